package entities

// CopyDraft is the copywriting planner output: alternatives for Stage 4 to
// select among, not finished copy.
type CopyDraft struct {
	HeadlineOptions      []string `json:"headline_options"`
	BodyParagraphOptions []string `json:"body_paragraph_options"`
	CTAVariations        []string `json:"cta_variations"`
}

type HashtagStrategy struct {
	Core  []string `json:"core"`
	Niche []string `json:"niche"`
	Local []string `json:"local"`
}

// SocialDraft is the social-media planner output.
type SocialDraft struct {
	InstagramCaption string          `json:"instagram_caption"`
	FacebookPost     string          `json:"facebook_post"`
	HashtagStrategy  HashtagStrategy `json:"hashtag_strategy"`
	StoryIdea        string          `json:"story_idea"`
}

// VisualDraft is the visuals planner output.
type VisualDraft struct {
	Mood               string   `json:"mood"`
	CoreConcept        string   `json:"core_concept"`
	KeyVisualElements  []string `json:"key_visual_elements"`
	CompositionalNotes string   `json:"compositional_notes"`
}

// ContentDraftBundle joins the three Stage-3 drafts. A bundle exists only
// when all three planners succeeded; downstream stages never observe a
// partial bundle.
type ContentDraftBundle struct {
	Copy    CopyDraft   `json:"copy_drafts"`
	Social  SocialDraft `json:"social_drafts"`
	Visuals VisualDraft `json:"visual_concept_draft"`
}
