package http

import (
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
)

// ErrorResponse is the uniform error body for campaign-studio endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GenerateCampaignRequest struct {
	RawUserInput        string                  `json:"raw_user_input"`
	UserSettings        *entities.BrandSettings `json:"user_settings,omitempty"`
	InspirationImageURL string                  `json:"inspiration_image_url,omitempty"`
}

type GenerateCampaignResponse struct {
	CampaignID        string                   `json:"campaign_id"`
	Blueprint         entities.MasterBlueprint `json:"blueprint"`
	GeneratedImageURL string                   `json:"generatedImageUrl"`
	AgentPipeline     entities.PipelineTrace   `json:"agentPipeline"`
}

type CampaignSummaryDTO struct {
	CampaignID        string `json:"campaign_id"`
	Title             string `json:"title"`
	GeneratedImageURL string `json:"generated_image_url"`
	CreatedAt         string `json:"created_at"`
}

type CampaignListResponse struct {
	Items []CampaignSummaryDTO `json:"items"`
}

type CampaignDetailResponse struct {
	CampaignID        string                   `json:"campaign_id"`
	Title             string                   `json:"title"`
	RawUserInput      string                   `json:"raw_user_input"`
	Blueprint         entities.MasterBlueprint `json:"blueprint"`
	GeneratedImageURL string                   `json:"generatedImageUrl"`
	AgentPipeline     entities.PipelineTrace   `json:"agentPipeline"`
	CreatedAt         string                   `json:"created_at"`
}

type InspirationUploadRequest struct {
	FileName string `json:"file_name"`
}

type InspirationUploadResponse struct {
	UploadURL  string    `json:"upload_url"`
	ObjectPath string    `json:"object_path"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type IntentRequest struct {
	RawUserInput string `json:"raw_user_input"`
}

type StrategyRequest struct {
	RawUserInput string                  `json:"raw_user_input"`
	Intent       entities.IntentResult   `json:"agent_1_output"`
	UserSettings *entities.BrandSettings `json:"user_settings,omitempty"`
}

type PlannersRequest struct {
	Brief entities.StrategicBrief `json:"agent_2_output"`
}

type SynthesisRequest struct {
	Brief        entities.StrategicBrief     `json:"agent_2_output"`
	Drafts       entities.ContentDraftBundle `json:"agent_3_outputs"`
	UserSettings *entities.BrandSettings     `json:"user_settings,omitempty"`
}
