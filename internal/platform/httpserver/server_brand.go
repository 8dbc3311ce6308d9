package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	branderrors "agencyx/contexts/campaign-studio/brand-service/domain/errors"
	brandhttp "agencyx/contexts/campaign-studio/brand-service/transport/http"
)

func (s *Server) registerBrandRoutes() {
	s.mux.HandleFunc("PUT /v1/brand", s.handleUpsertBrand)
	s.mux.HandleFunc("GET /v1/brand", s.handleGetBrand)
}

func (s *Server) handleUpsertBrand(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeBrandError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req brandhttp.UpsertBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBrandError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.brand.Handler.UpsertBrandHandler(r.Context(), userID, req)
	if err != nil {
		writeBrandDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeBrandError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.brand.Handler.GetBrandHandler(r.Context(), userID)
	if err != nil {
		writeBrandDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeBrandDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, branderrors.ErrUserIdentityRequired):
		writeBrandError(w, http.StatusUnauthorized, "missing_user", err.Error())
	case errors.Is(err, branderrors.ErrBrandNotFound):
		writeBrandError(w, http.StatusNotFound, "brand_not_found", err.Error())
	case errors.Is(err, branderrors.ErrInvalidBrandName),
		errors.Is(err, branderrors.ErrInvalidPrimaryColor):
		writeBrandError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBrandError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBrandError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, brandhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
