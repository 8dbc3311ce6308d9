package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agencyx/contexts/campaign-studio/template-service/application"
	"agencyx/contexts/campaign-studio/template-service/domain/entities"
	httptransport "agencyx/contexts/campaign-studio/template-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RequestUploadHandler godoc
// @Summary Request a template upload URL
// @Description Registers a pending community template and returns a presigned PUT URL for its asset.
// @Tags campaign-studio/templates
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param request body http.RequestUploadRequest true "Template metadata"
// @Success 200 {object} http.RequestUploadResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /v1/templates/uploads [post]
func (h Handler) RequestUploadHandler(
	ctx context.Context,
	userID string,
	req httptransport.RequestUploadRequest,
) (httptransport.RequestUploadResponse, error) {
	result, err := h.Service.RequestUpload(ctx, application.RequestUploadCommand{
		UploaderID: userID,
		Title:      req.Title,
		Niche:      req.Niche,
		FileName:   req.FileName,
	})
	if err != nil {
		return httptransport.RequestUploadResponse{}, err
	}
	return httptransport.RequestUploadResponse{
		TemplateID: result.Template.TemplateID,
		UploadURL:  result.UploadURL,
		AssetPath:  result.Template.AssetPath,
		ExpiresAt:  result.ExpiresAt,
	}, nil
}

// ConfirmUploadHandler godoc
// @Summary Confirm a template upload
// @Description Verifies the asset landed, publishes the template, and grants the uploader reward once.
// @Tags campaign-studio/templates
// @Produce json
// @Param X-User-Id header string true "Caller identity"
// @Param template_id path string true "Template id"
// @Success 200 {object} http.ConfirmUploadResponse
// @Failure 404 {object} http.ErrorResponse
// @Failure 409 {object} http.ErrorResponse
// @Router /v1/templates/{template_id}/confirm [post]
func (h Handler) ConfirmUploadHandler(
	ctx context.Context,
	userID string,
	templateID string,
) (httptransport.ConfirmUploadResponse, error) {
	template, err := h.Service.ConfirmUpload(ctx, userID, templateID)
	if err != nil {
		return httptransport.ConfirmUploadResponse{}, err
	}
	reward := h.Service.RewardCredits
	if reward <= 0 {
		reward = 2
	}
	return httptransport.ConfirmUploadResponse{
		Template:      templateDTO(template),
		RewardCredits: reward,
	}, nil
}

// TemplateListHandler godoc
// @Summary List community templates
// @Description Returns published templates, newest first, optionally filtered by niche.
// @Tags campaign-studio/templates
// @Produce json
// @Param niche query string false "Niche filter"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} http.TemplateListResponse
// @Router /v1/templates [get]
func (h Handler) TemplateListHandler(
	ctx context.Context,
	niche string,
	limit int,
) (httptransport.TemplateListResponse, error) {
	templates, err := h.Service.ListTemplates(ctx, niche, limit)
	if err != nil {
		return httptransport.TemplateListResponse{}, err
	}
	resp := httptransport.TemplateListResponse{
		Items: make([]httptransport.TemplateDTO, 0, len(templates)),
	}
	for _, listing := range templates {
		item := templateDTO(listing.Template)
		item.DownloadURL = listing.DownloadURL
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

func templateDTO(template entities.Template) httptransport.TemplateDTO {
	return httptransport.TemplateDTO{
		TemplateID: template.TemplateID,
		UploaderID: template.UploaderID,
		Title:      template.Title,
		Niche:      template.Niche,
		AssetPath:  template.AssetPath,
		Status:     string(template.Status),
		CreatedAt:  template.CreatedAt.Format(time.RFC3339),
	}
}
