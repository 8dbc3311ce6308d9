package ports

import (
	"context"
	"time"

	"agencyx/contexts/campaign-studio/brand-service/domain/entities"
)

type Repository interface {
	UpsertBrand(ctx context.Context, profile entities.BrandProfile) (entities.BrandProfile, error)
	GetBrand(ctx context.Context, userID string) (entities.BrandProfile, error)
}

type Clock interface {
	Now() time.Time
}
