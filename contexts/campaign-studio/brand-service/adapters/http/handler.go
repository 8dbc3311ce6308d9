package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agencyx/contexts/campaign-studio/brand-service/application"
	"agencyx/contexts/campaign-studio/brand-service/domain/entities"
	httptransport "agencyx/contexts/campaign-studio/brand-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// UpsertBrandHandler godoc
// @Summary Save brand settings
// @Description Creates or replaces the caller's brand profile.
// @Tags campaign-studio/brand
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body http.UpsertBrandRequest true "Brand profile"
// @Success 200 {object} http.BrandResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /v1/brand [put]
func (h Handler) UpsertBrandHandler(
	ctx context.Context,
	userID string,
	req httptransport.UpsertBrandRequest,
) (httptransport.BrandResponse, error) {
	profile, err := h.Service.UpsertBrand(ctx, application.UpsertBrandCommand{
		UserID:              userID,
		Name:                req.Name,
		PrimaryColor:        req.PrimaryColor,
		Voice:               req.Voice,
		Mission:             req.Mission,
		Tagline:             req.Tagline,
		Industry:            req.Industry,
		Description:         req.Description,
		ContactFields:       req.ContactFields,
		ContactStripEnabled: req.ContactStripEnabled,
	})
	if err != nil {
		return httptransport.BrandResponse{}, err
	}
	return brandResponse(profile), nil
}

// GetBrandHandler godoc
// @Summary Get brand settings
// @Description Returns the caller's stored brand profile.
// @Tags campaign-studio/brand
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Success 200 {object} http.BrandResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /v1/brand [get]
func (h Handler) GetBrandHandler(ctx context.Context, userID string) (httptransport.BrandResponse, error) {
	profile, err := h.Service.GetBrand(ctx, userID)
	if err != nil {
		return httptransport.BrandResponse{}, err
	}
	return brandResponse(profile), nil
}

func brandResponse(profile entities.BrandProfile) httptransport.BrandResponse {
	return httptransport.BrandResponse{
		UserID:              profile.UserID,
		Name:                profile.Name,
		PrimaryColor:        profile.PrimaryColor,
		Voice:               profile.Voice,
		Mission:             profile.Mission,
		Tagline:             profile.Tagline,
		Industry:            profile.Industry,
		Description:         profile.Description,
		ContactFields:       profile.ContactFields,
		ContactStripEnabled: profile.ContactStripEnabled,
		UpdatedAt:           profile.UpdatedAt.Format(time.RFC3339),
	}
}
