package application

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"agencyx/contexts/campaign-studio/brand-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/brand-service/domain/errors"
	"agencyx/contexts/campaign-studio/brand-service/ports"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

type UpsertBrandCommand struct {
	UserID              string
	Name                string
	PrimaryColor        string
	Voice               string
	Mission             string
	Tagline             string
	Industry            string
	Description         string
	ContactFields       map[string]string
	ContactStripEnabled bool
}

func (s Service) UpsertBrand(ctx context.Context, cmd UpsertBrandCommand) (entities.BrandProfile, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(cmd.UserID) == "" {
		return entities.BrandProfile{}, domainerrors.ErrUserIdentityRequired
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return entities.BrandProfile{}, domainerrors.ErrInvalidBrandName
	}
	if cmd.PrimaryColor != "" && !hexColorPattern.MatchString(cmd.PrimaryColor) {
		return entities.BrandProfile{}, domainerrors.ErrInvalidPrimaryColor
	}

	now := s.Clock.Now().UTC()
	profile, err := s.Repo.UpsertBrand(ctx, entities.BrandProfile{
		UserID:              cmd.UserID,
		Name:                strings.TrimSpace(cmd.Name),
		PrimaryColor:        cmd.PrimaryColor,
		Voice:               cmd.Voice,
		Mission:             cmd.Mission,
		Tagline:             cmd.Tagline,
		Industry:            cmd.Industry,
		Description:         cmd.Description,
		ContactFields:       cmd.ContactFields,
		ContactStripEnabled: cmd.ContactStripEnabled,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	if err != nil {
		return entities.BrandProfile{}, err
	}

	logger.Info("brand profile saved",
		"event", "brand_profile_saved",
		"module", "campaign-studio/brand-service",
		"layer", "application",
		"user_id", cmd.UserID,
	)
	return profile, nil
}

func (s Service) GetBrand(ctx context.Context, userID string) (entities.BrandProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.BrandProfile{}, domainerrors.ErrUserIdentityRequired
	}
	return s.Repo.GetBrand(ctx, userID)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
