package ports

import (
	"context"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	contractsv1 "agencyx/contracts/gen/events/v1"
)

// CompletionInput is one text round trip against the generative gateway.
// Payload is the structured input serialized for the model; Instruction is
// the role prompt.
type CompletionInput struct {
	Model       string
	Instruction string
	Payload     string
	Temperature float64
}

// CompletionGateway is the single generative capability every stage uses.
// It returns raw completion text; each stage owns its parsing policy.
type CompletionGateway interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// ImageSynthesizer turns an engineered prompt (optionally with one reference
// image) into a generated image reference.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, prompt string, referenceImageURL string) (string, error)
}

// CreditLedger is the deduct/credit contract against the finance-core
// ledger. Debit is atomic: it either charges in full or reports
// insufficient funds with no partial effect.
type CreditLedger interface {
	Debit(ctx context.Context, userID string, amount int, reason string) error
	Credit(ctx context.Context, userID string, amount int, reason string) error
}

// CampaignArchive persists successful runs for the gallery.
type CampaignArchive interface {
	SaveCampaign(ctx context.Context, record entities.CampaignRecord) error
	GetCampaign(ctx context.Context, campaignID string) (entities.CampaignRecord, error)
	ListCampaigns(ctx context.Context, userID string, limit int) ([]entities.CampaignRecord, error)
}

// BrandDirectory resolves a caller's stored brand profile when the request
// body carries no brand settings.
type BrandDirectory interface {
	BrandFor(ctx context.Context, userID string) (entities.BrandSettings, error)
}

// ObjectStore issues presigned PUT URLs for inspiration-image uploads.
type ObjectStore interface {
	PresignUpload(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
