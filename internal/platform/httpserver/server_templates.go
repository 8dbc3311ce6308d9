package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	templateerrors "agencyx/contexts/campaign-studio/template-service/domain/errors"
	templatehttp "agencyx/contexts/campaign-studio/template-service/transport/http"
)

func (s *Server) registerTemplateRoutes() {
	s.mux.HandleFunc("POST /v1/templates/uploads", s.handleTemplateUpload)
	s.mux.HandleFunc("POST /v1/templates/{template_id}/confirm", s.handleTemplateConfirm)
	s.mux.HandleFunc("GET /v1/templates", s.handleTemplateList)
}

func (s *Server) handleTemplateUpload(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeTemplateError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req templatehttp.RequestUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTemplateError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.templates.Handler.RequestUploadHandler(r.Context(), userID, req)
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTemplateConfirm(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeTemplateError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	templateID := r.PathValue("template_id")
	resp, err := s.templates.Handler.ConfirmUploadHandler(r.Context(), userID, templateID)
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTemplateList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeTemplateError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.templates.Handler.TemplateListHandler(r.Context(), r.URL.Query().Get("niche"), limit)
	if err != nil {
		writeTemplateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTemplateDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, templateerrors.ErrUserIdentityRequired):
		writeTemplateError(w, http.StatusUnauthorized, "missing_user", err.Error())
	case errors.Is(err, templateerrors.ErrTemplateNotFound):
		writeTemplateError(w, http.StatusNotFound, "template_not_found", err.Error())
	case errors.Is(err, templateerrors.ErrAlreadyConfirmed):
		writeTemplateError(w, http.StatusConflict, "already_confirmed", err.Error())
	case errors.Is(err, templateerrors.ErrAssetMissing):
		writeTemplateError(w, http.StatusConflict, "asset_missing", err.Error())
	case errors.Is(err, templateerrors.ErrInvalidTemplate),
		errors.Is(err, templateerrors.ErrInvalidUploadRequest):
		writeTemplateError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTemplateError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTemplateError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, templatehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
