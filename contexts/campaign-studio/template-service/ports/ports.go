package ports

import (
	"context"
	"time"

	"agencyx/contexts/campaign-studio/template-service/domain/entities"
)

type Repository interface {
	CreateTemplate(ctx context.Context, template entities.Template) error
	GetTemplate(ctx context.Context, templateID string) (entities.Template, error)
	UpdateTemplate(ctx context.Context, template entities.Template) error
	ListTemplates(ctx context.Context, niche string, limit int) ([]entities.Template, error)
}

// ObjectStore issues presigned PUT URLs, verifies the asset landed before a
// template can be confirmed, and signs GET URLs for listing.
type ObjectStore interface {
	PresignUpload(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	ObjectExists(ctx context.Context, objectPath string) (bool, error)
}

// CreditLedger grants the uploader reward. The ledger owns the
// credits.granted event that results.
type CreditLedger interface {
	Credit(ctx context.Context, userID string, amount int, reason string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
