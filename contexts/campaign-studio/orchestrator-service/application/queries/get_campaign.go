package queries

import (
	"context"
	"log/slog"
	"strings"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

type GetCampaignQuery struct {
	UserID     string
	CampaignID string
}

// GetCampaignUseCase loads one archived campaign. Ownership is enforced
// here: a campaign belonging to another user reads as not found.
type GetCampaignUseCase struct {
	Archive ports.CampaignArchive
	Logger  *slog.Logger
}

func (u GetCampaignUseCase) Execute(ctx context.Context, query GetCampaignQuery) (entities.CampaignRecord, error) {
	if strings.TrimSpace(query.UserID) == "" {
		return entities.CampaignRecord{}, domainerrors.ErrUserIdentityRequired
	}
	if strings.TrimSpace(query.CampaignID) == "" {
		return entities.CampaignRecord{}, domainerrors.ErrCampaignNotFound
	}

	record, err := u.Archive.GetCampaign(ctx, query.CampaignID)
	if err != nil {
		return entities.CampaignRecord{}, err
	}
	if record.UserID != query.UserID {
		return entities.CampaignRecord{}, domainerrors.ErrCampaignNotFound
	}
	return record, nil
}
