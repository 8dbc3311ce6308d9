package entities

// DeconstructedElements is the hierarchy-of-focus breakdown: the hero, the
// atmosphere, and the commercial details.
type DeconstructedElements struct {
	PrimarySubject      string `json:"primary_subject"`
	SecondaryContext    string `json:"secondary_context"`
	CallToActionDetails string `json:"call_to_action_details"`
	BrandName           string `json:"brand_name"`
	BrandExclusions     string `json:"brand_exclusions"`
}

// BriefBody is the strategic content produced by Stage 2.
type BriefBody struct {
	CampaignGoal          string                `json:"campaign_goal"`
	TargetAudience        string                `json:"target_audience"`
	DeconstructedElements DeconstructedElements `json:"deconstructed_elements"`
	SuggestedPlatforms    []string              `json:"suggested_platforms"`
}

// StrategicBrief is Stage 2 output. Once produced it is never mutated: the
// three Stage-3 planners and Stage 4 all read the identical value.
type StrategicBrief struct {
	Intent IntentClassification `json:"intent"`
	Brief  BriefBody            `json:"strategic_brief"`
}
