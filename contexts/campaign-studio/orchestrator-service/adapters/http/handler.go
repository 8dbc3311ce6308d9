package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/application/commands"
	"agencyx/contexts/campaign-studio/orchestrator-service/application/queries"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	httptransport "agencyx/contexts/campaign-studio/orchestrator-service/transport/http"
)

type Handler struct {
	Generate      commands.GenerateCampaignUseCase
	UploadRequest commands.RequestInspirationUploadUseCase
	GetCampaign   queries.GetCampaignUseCase
	ListCampaigns queries.ListCampaignsUseCase
	Logger        *slog.Logger
}

// GenerateCampaignHandler godoc
// @Summary Generate a marketing campaign
// @Description Runs the full four-stage generation pipeline plus image synthesis. Costs one credit.
// @Tags campaign-studio/orchestrator
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body http.GenerateCampaignRequest true "Campaign request"
// @Success 200 {object} http.GenerateCampaignResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 402 {object} http.ErrorResponse
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/campaigns/generate [post]
func (h Handler) GenerateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.GenerateCampaignRequest,
) (httptransport.GenerateCampaignResponse, error) {
	result, err := h.Generate.Execute(ctx, commands.GenerateCampaignCommand{
		UserID:              userID,
		RawInput:            req.RawUserInput,
		BrandSettings:       req.UserSettings,
		InspirationImageURL: req.InspirationImageURL,
	})
	if err != nil {
		return httptransport.GenerateCampaignResponse{}, err
	}
	return httptransport.GenerateCampaignResponse{
		CampaignID:        result.CampaignID,
		Blueprint:         result.Blueprint,
		GeneratedImageURL: result.GeneratedImageURL,
		AgentPipeline:     result.AgentPipeline,
	}, nil
}

// CampaignDetailHandler godoc
// @Summary Get an archived campaign
// @Description Returns one previously generated campaign owned by the caller.
// @Tags campaign-studio/orchestrator
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param campaign_id path string true "Campaign id"
// @Success 200 {object} http.CampaignDetailResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /v1/campaigns/{campaign_id} [get]
func (h Handler) CampaignDetailHandler(
	ctx context.Context,
	userID string,
	campaignID string,
) (httptransport.CampaignDetailResponse, error) {
	record, err := h.GetCampaign.Execute(ctx, queries.GetCampaignQuery{
		UserID:     userID,
		CampaignID: campaignID,
	})
	if err != nil {
		return httptransport.CampaignDetailResponse{}, err
	}
	return httptransport.CampaignDetailResponse{
		CampaignID:        record.CampaignID,
		Title:             record.Title,
		RawUserInput:      record.RawInput,
		Blueprint:         record.Blueprint,
		GeneratedImageURL: record.GeneratedImageURL,
		AgentPipeline:     record.Trace,
		CreatedAt:         record.CreatedAt.Format(time.RFC3339),
	}, nil
}

// CampaignListHandler godoc
// @Summary List archived campaigns
// @Description Returns the caller's campaign gallery, newest first.
// @Tags campaign-studio/orchestrator
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} http.CampaignListResponse
// @Failure 401 {object} http.ErrorResponse
// @Router /v1/campaigns [get]
func (h Handler) CampaignListHandler(
	ctx context.Context,
	userID string,
	limit int,
) (httptransport.CampaignListResponse, error) {
	records, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return httptransport.CampaignListResponse{}, err
	}
	resp := httptransport.CampaignListResponse{
		Items: make([]httptransport.CampaignSummaryDTO, 0, len(records)),
	}
	for _, record := range records {
		resp.Items = append(resp.Items, httptransport.CampaignSummaryDTO{
			CampaignID:        record.CampaignID,
			Title:             record.Title,
			GeneratedImageURL: record.GeneratedImageURL,
			CreatedAt:         record.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// InspirationUploadHandler godoc
// @Summary Request an inspiration-image upload URL
// @Description Issues a short-lived presigned PUT URL for an inspiration image.
// @Tags campaign-studio/orchestrator
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body http.InspirationUploadRequest true "Upload request"
// @Success 200 {object} http.InspirationUploadResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /v1/campaigns/inspiration-uploads [post]
func (h Handler) InspirationUploadHandler(
	ctx context.Context,
	userID string,
	req httptransport.InspirationUploadRequest,
) (httptransport.InspirationUploadResponse, error) {
	result, err := h.UploadRequest.Execute(ctx, commands.RequestInspirationUploadCommand{
		UserID:   userID,
		FileName: req.FileName,
	})
	if err != nil {
		return httptransport.InspirationUploadResponse{}, err
	}
	return httptransport.InspirationUploadResponse{
		UploadURL:  result.UploadURL,
		ObjectPath: result.ObjectPath,
		ExpiresAt:  result.ExpiresAt,
	}, nil
}

// IntentHandler godoc
// @Summary Classify campaign intent
// @Description Runs the intent analyst stage on raw user input.
// @Tags campaign-studio/agents
// @Accept json
// @Produce json
// @Param request body http.IntentRequest true "Raw input"
// @Success 200 {object} entities.IntentResult
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/agents/intent [post]
func (h Handler) IntentHandler(ctx context.Context, req httptransport.IntentRequest) (entities.IntentResult, error) {
	return h.Generate.Intent.Classify(ctx, req.RawUserInput)
}

// StrategyHandler godoc
// @Summary Build a strategic brief
// @Description Runs the strategy and deconstruction stage.
// @Tags campaign-studio/agents
// @Accept json
// @Produce json
// @Param request body http.StrategyRequest true "Stage input"
// @Success 200 {object} entities.StrategicBrief
// @Failure 500 {object} http.ErrorResponse
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/agents/strategy [post]
func (h Handler) StrategyHandler(ctx context.Context, req httptransport.StrategyRequest) (entities.StrategicBrief, error) {
	if strings.TrimSpace(req.RawUserInput) == "" {
		return entities.StrategicBrief{}, domainerrors.ErrEmptyInput
	}
	return h.Generate.Strategy.Build(ctx, req.RawUserInput, req.Intent, brandOrDefault(req.UserSettings))
}

// PlannersHandler godoc
// @Summary Draft campaign content
// @Description Runs the three content planners concurrently against a strategic brief.
// @Tags campaign-studio/agents
// @Accept json
// @Produce json
// @Param request body http.PlannersRequest true "Stage input"
// @Success 200 {object} entities.ContentDraftBundle
// @Failure 500 {object} http.ErrorResponse
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/agents/planners [post]
func (h Handler) PlannersHandler(ctx context.Context, req httptransport.PlannersRequest) (entities.ContentDraftBundle, error) {
	return h.Generate.Planners.Draft(ctx, req.Brief)
}

// SynthesisHandler godoc
// @Summary Synthesize the master blueprint
// @Description Runs the creative-director stage over the brief and drafts.
// @Tags campaign-studio/agents
// @Accept json
// @Produce json
// @Param request body http.SynthesisRequest true "Stage input"
// @Success 200 {object} entities.MasterBlueprint
// @Failure 500 {object} http.ErrorResponse
// @Failure 502 {object} http.ErrorResponse
// @Router /v1/agents/synthesis [post]
func (h Handler) SynthesisHandler(ctx context.Context, req httptransport.SynthesisRequest) (entities.MasterBlueprint, error) {
	return h.Generate.Synthesis.Synthesize(ctx, req.Brief, req.Drafts, brandOrDefault(req.UserSettings))
}

func brandOrDefault(brand *entities.BrandSettings) entities.BrandSettings {
	if brand == nil {
		return entities.BrandSettings{}
	}
	return *brand
}
