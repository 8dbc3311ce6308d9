package queries

import (
	"context"
	"log/slog"
	"strings"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

const defaultGalleryLimit = 50

type ListCampaignsQuery struct {
	UserID string
	Limit  int
}

type ListCampaignsUseCase struct {
	Archive ports.CampaignArchive
	Logger  *slog.Logger
}

func (u ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]entities.CampaignRecord, error) {
	if strings.TrimSpace(query.UserID) == "" {
		return nil, domainerrors.ErrUserIdentityRequired
	}
	limit := query.Limit
	if limit <= 0 || limit > defaultGalleryLimit {
		limit = defaultGalleryLimit
	}
	return u.Archive.ListCampaigns(ctx, query.UserID, limit)
}
