package brand

import (
	"context"

	brandapp "agencyx/contexts/campaign-studio/brand-service/application"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

// DirectoryAdapter resolves stored brand profiles for pipeline runs whose
// request body carried no brand settings.
type DirectoryAdapter struct {
	Service brandapp.Service
}

var _ ports.BrandDirectory = DirectoryAdapter{}

func (a DirectoryAdapter) BrandFor(ctx context.Context, userID string) (entities.BrandSettings, error) {
	profile, err := a.Service.GetBrand(ctx, userID)
	if err != nil {
		return entities.BrandSettings{}, err
	}
	return entities.BrandSettings{
		Name:                profile.Name,
		PrimaryColor:        profile.PrimaryColor,
		Voice:               profile.Voice,
		Mission:             profile.Mission,
		Tagline:             profile.Tagline,
		Industry:            profile.Industry,
		Description:         profile.Description,
		ContactFields:       profile.ContactFields,
		ContactStripEnabled: profile.ContactStripEnabled,
	}, nil
}
