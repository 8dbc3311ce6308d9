package entities

import "time"

// PipelineTrace carries the intermediate stage outputs alongside the final
// blueprint, for observability and debugging.
type PipelineTrace struct {
	Intent IntentResult       `json:"intent_analysis"`
	Brief  StrategicBrief     `json:"strategic_brief"`
	Drafts ContentDraftBundle `json:"content_drafts"`
}

// CampaignRecord is the persisted result of one successful pipeline run,
// served by the gallery queries.
type CampaignRecord struct {
	CampaignID        string
	UserID            string
	Title             string
	RawInput          string
	Blueprint         MasterBlueprint
	GeneratedImageURL string
	Trace             PipelineTrace
	CreatedAt         time.Time
}
