package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	"agencyx/contexts/campaign-studio/orchestrator-service/application/stages"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
	contractsv1 "agencyx/contracts/gen/events/v1"
)

// GenerateCampaignCommand is one full pipeline request. BrandSettings is
// optional; when nil the caller's stored brand profile is looked up, and a
// missing profile falls back to neutral settings rather than failing the run.
type GenerateCampaignCommand struct {
	UserID              string
	RawInput            string
	BrandSettings       *entities.BrandSettings
	InspirationImageURL string
}

// GenerateCampaignResult is the assembled deliverable: the blueprint, the
// generated image, and the full stage-by-stage trace.
type GenerateCampaignResult struct {
	CampaignID        string                   `json:"campaign_id"`
	Blueprint         entities.MasterBlueprint `json:"blueprint"`
	GeneratedImageURL string                   `json:"generatedImageUrl"`
	AgentPipeline     entities.PipelineTrace   `json:"agentPipeline"`
}

// GenerateCampaignUseCase runs the credit gate and the four generation
// stages in order, then image synthesis, then archival. The debit happens
// exactly once per request, before any model call; when a later step fails
// and RefundOnFailure is set, a single compensating credit is issued.
type GenerateCampaignUseCase struct {
	Ledger          ports.CreditLedger
	Archive         ports.CampaignArchive
	Brands          ports.BrandDirectory
	Images          ports.ImageSynthesizer
	Outbox          ports.OutboxWriter
	Clock           ports.Clock
	IDGenerator     ports.IDGenerator
	Intent          stages.IntentClassifier
	Strategy        stages.StrategyBuilder
	Planners        stages.ContentPlanners
	Synthesis       stages.MasterSynthesizer
	CreditCost      int
	RefundOnFailure bool
	Logger          *slog.Logger
}

func (u GenerateCampaignUseCase) Execute(ctx context.Context, cmd GenerateCampaignCommand) (GenerateCampaignResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.UserID) == "" {
		return GenerateCampaignResult{}, domainerrors.ErrUserIdentityRequired
	}

	logger.Info("campaign generation started",
		"event", "campaign_generation_started",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"user_id", cmd.UserID,
	)

	brand := u.resolveBrand(ctx, cmd)

	if err := u.Ledger.Debit(ctx, cmd.UserID, u.creditCost(), "campaign generation"); err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientCredits) {
			logger.Info("campaign generation rejected",
				"event", "campaign_generation_rejected",
				"module", "campaign-studio/orchestrator-service",
				"layer", "application",
				"user_id", cmd.UserID,
				"reason", "insufficient_credits",
			)
		}
		return GenerateCampaignResult{}, err
	}

	result, err := u.runPipeline(ctx, cmd, brand)
	if err != nil {
		u.refund(ctx, cmd.UserID, logger)
		return GenerateCampaignResult{}, err
	}

	logger.Info("campaign generation completed",
		"event", "campaign_generation_completed",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"campaign_id", result.CampaignID,
	)
	return result, nil
}

// runPipeline covers everything after the debit; any error returned here
// triggers the compensating credit in Execute.
func (u GenerateCampaignUseCase) runPipeline(
	ctx context.Context,
	cmd GenerateCampaignCommand,
	brand entities.BrandSettings,
) (GenerateCampaignResult, error) {
	intent, err := u.Intent.Classify(ctx, cmd.RawInput)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	brief, err := u.Strategy.Build(ctx, cmd.RawInput, intent, brand)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	drafts, err := u.Planners.Draft(ctx, brief)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	blueprint, err := u.Synthesis.Synthesize(ctx, brief, drafts, brand)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	imageURL, err := u.Images.Synthesize(ctx, blueprint.MasterVisuals.MasterImagePrompt, cmd.InspirationImageURL)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	campaignID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return GenerateCampaignResult{}, err
	}

	trace := entities.PipelineTrace{
		Intent: intent,
		Brief:  brief,
		Drafts: drafts,
	}
	record := entities.CampaignRecord{
		CampaignID:        campaignID,
		UserID:            cmd.UserID,
		Title:             blueprint.CampaignTitle,
		RawInput:          cmd.RawInput,
		Blueprint:         blueprint,
		GeneratedImageURL: imageURL,
		Trace:             trace,
		CreatedAt:         u.now(),
	}
	if err := u.Archive.SaveCampaign(ctx, record); err != nil {
		return GenerateCampaignResult{}, err
	}
	if err := u.appendGeneratedEvent(ctx, record); err != nil {
		return GenerateCampaignResult{}, err
	}

	return GenerateCampaignResult{
		CampaignID:        campaignID,
		Blueprint:         blueprint,
		GeneratedImageURL: imageURL,
		AgentPipeline:     trace,
	}, nil
}

func (u GenerateCampaignUseCase) resolveBrand(ctx context.Context, cmd GenerateCampaignCommand) entities.BrandSettings {
	if cmd.BrandSettings != nil && !cmd.BrandSettings.Empty() {
		return *cmd.BrandSettings
	}
	if u.Brands == nil {
		return entities.BrandSettings{}
	}
	brand, err := u.Brands.BrandFor(ctx, cmd.UserID)
	if err != nil {
		return entities.BrandSettings{}
	}
	return brand
}

// refund is best effort: a failed compensating credit is logged, not
// surfaced, so the caller still sees the pipeline error.
func (u GenerateCampaignUseCase) refund(ctx context.Context, userID string, logger *slog.Logger) {
	if !u.RefundOnFailure {
		return
	}
	if err := u.Ledger.Credit(ctx, userID, u.creditCost(), "campaign generation failed"); err != nil {
		logger.Error("credit refund failed",
			"event", "campaign_credit_refund_failed",
			"module", "campaign-studio/orchestrator-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
	}
}

func (u GenerateCampaignUseCase) appendGeneratedEvent(ctx context.Context, record entities.CampaignRecord) error {
	if u.Outbox == nil {
		return nil
	}
	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(struct {
		CampaignID string    `json:"campaign_id"`
		UserID     string    `json:"user_id"`
		Title      string    `json:"title"`
		CreatedAt  time.Time `json:"created_at"`
	}{
		CampaignID: record.CampaignID,
		UserID:     record.UserID,
		Title:      record.Title,
		CreatedAt:  record.CreatedAt,
	})
	if err != nil {
		return err
	}
	return u.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:       eventID,
		EventType:     contractsv1.EventTypeCampaignGenerated,
		OccurredAt:    u.now(),
		SourceService: "campaign-studio/orchestrator-service",
		SchemaVersion: 1,
		PartitionKey:  record.UserID,
		Data:          data,
	})
}

func (u GenerateCampaignUseCase) creditCost() int {
	if u.CreditCost > 0 {
		return u.CreditCost
	}
	return 1
}

func (u GenerateCampaignUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
