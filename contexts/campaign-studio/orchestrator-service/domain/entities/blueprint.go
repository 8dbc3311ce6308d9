package entities

import "strings"

// MasterBlueprint is the client-facing deliverable assembled by Stage 4.
// Field names mirror the wire contract the synthesis model is instructed to
// produce; the blueprint is immutable once returned.
type MasterBlueprint struct {
	CampaignTitle      string             `json:"campaignTitle"`
	StrategicSummary   StrategicSummary   `json:"strategicSummary"`
	BrandIdentity      BrandIdentity      `json:"brandIdentity"`
	MasterCopywriting  MasterCopywriting  `json:"masterCopywriting"`
	DistributionAssets DistributionAssets `json:"distributionAssets"`
	MasterVisuals      MasterVisuals      `json:"masterVisuals"`
}

type StrategicSummary struct {
	Intent         string `json:"intent"`
	Goal           string `json:"goal"`
	TargetAudience string `json:"targetAudience"`
}

type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type BrandIdentity struct {
	Personality  string       `json:"personality"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Typography   string       `json:"typography"`
}

type MasterCopywriting struct {
	Headline     string `json:"headline"`
	Body         string `json:"body"`
	CallToAction string `json:"callToAction"`
}

type DistributionAsset struct {
	Copy             string `json:"copy"`
	FormatSuggestion string `json:"format_suggestion"`
}

type DistributionAssets struct {
	FacebookInstagramPost DistributionAsset `json:"facebook_instagram_post"`
	WhatsappStatus        DistributionAsset `json:"whatsapp_status"`
}

// ContactStrip is the contact-information band in the layout. It is always
// present in the blueprint; Enabled gates whether it carries content.
type ContactStrip struct {
	Enabled             bool     `json:"enabled"`
	BackgroundColor     string   `json:"background_color,omitempty"`
	TextColor           string   `json:"text_color,omitempty"`
	ContentPlaceholders []string `json:"content_placeholders,omitempty"`
	FontStyle           string   `json:"font_style,omitempty"`
}

type TextPlacement struct {
	HeadlinePosition string `json:"headline_position"`
	BodyPosition     string `json:"body_position"`
}

type LayoutInstructions struct {
	ContactStrip      ContactStrip  `json:"contact_strip"`
	LogoPlacement     string        `json:"logo_placement"`
	MainTextPlacement TextPlacement `json:"main_text_placement"`
}

type MasterVisuals struct {
	CreativeDirection  string             `json:"creative_direction"`
	MasterImagePrompt  string             `json:"master_image_prompt"`
	LayoutInstructions LayoutInstructions `json:"layoutInstructions"`
}

// Validate reports whether the blueprint carries the minimum a caller can
// render: a title and a non-empty engineered image prompt.
func (b MasterBlueprint) Validate() bool {
	return strings.TrimSpace(b.CampaignTitle) != "" &&
		strings.TrimSpace(b.MasterVisuals.MasterImagePrompt) != ""
}
