package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	brandservice "agencyx/contexts/campaign-studio/brand-service"
	orchestratorservice "agencyx/contexts/campaign-studio/orchestrator-service"
	campaignerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	campaignhttp "agencyx/contexts/campaign-studio/orchestrator-service/transport/http"
	templateservice "agencyx/contexts/campaign-studio/template-service"
	creditledgerservice "agencyx/contexts/finance-core/credit-ledger-service"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "agencyx/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	orchestrator orchestratorservice.Module
	ledger       creditledgerservice.Module
	brand        brandservice.Module
	templates    templateservice.Module
}

func New(
	orchestrator orchestratorservice.Module,
	ledger creditledgerservice.Module,
	brand brandservice.Module,
	templates templateservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		orchestrator: orchestrator,
		ledger:       ledger,
		brand:        brand,
		templates:    templates,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the route table for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/campaigns/generate", s.handleGenerateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("POST /v1/campaigns/inspiration-uploads", s.handleInspirationUpload)

	s.mux.HandleFunc("POST /v1/agents/intent", s.handleAgentIntent)
	s.mux.HandleFunc("POST /v1/agents/strategy", s.handleAgentStrategy)
	s.mux.HandleFunc("POST /v1/agents/planners", s.handleAgentPlanners)
	s.mux.HandleFunc("POST /v1/agents/synthesis", s.handleAgentSynthesis)

	s.registerCreditRoutes()
	s.registerBrandRoutes()
	s.registerTemplateRoutes()
}

func (s *Server) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req campaignhttp.GenerateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.orchestrator.Handler.GenerateCampaignHandler(r.Context(), userID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeCampaignError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.orchestrator.Handler.CampaignListHandler(r.Context(), userID, limit)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	campaignID := r.PathValue("campaign_id")
	resp, err := s.orchestrator.Handler.CampaignDetailHandler(r.Context(), userID, campaignID)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInspirationUpload(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req campaignhttp.InspirationUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.orchestrator.Handler.InspirationUploadHandler(r.Context(), userID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAgentIntent(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orchestrator.Handler.IntentHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAgentStrategy(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orchestrator.Handler.StrategyHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAgentPlanners(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.PlannersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orchestrator.Handler.PlannersHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAgentSynthesis(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.SynthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orchestrator.Handler.SynthesisHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	var synthesisErr *campaignerrors.SynthesisParseError
	switch {
	case errors.Is(err, campaignerrors.ErrUserIdentityRequired):
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", err.Error())
	case errors.Is(err, campaignerrors.ErrInsufficientCredits):
		writeCampaignError(w, http.StatusPaymentRequired, "insufficient_credits", err.Error())
	case errors.Is(err, campaignerrors.ErrCampaignNotFound):
		writeCampaignError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, campaignerrors.ErrEmptyInput),
		errors.Is(err, campaignerrors.ErrInvalidUploadRequest):
		writeCampaignError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.As(err, &synthesisErr):
		writeCampaignError(w, http.StatusInternalServerError, "synthesis_parse_failed", err.Error())
	case errors.Is(err, campaignerrors.ErrMalformedStageOutput):
		writeCampaignError(w, http.StatusInternalServerError, "malformed_stage_output", err.Error())
	case errors.Is(err, campaignerrors.ErrUpstreamService):
		writeCampaignError(w, http.StatusBadGateway, "upstream_unavailable", err.Error())
	case errors.Is(err, campaignerrors.ErrImageSynthesis):
		writeCampaignError(w, http.StatusInternalServerError, "image_synthesis_failed", err.Error())
	default:
		writeCampaignError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCampaignError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, campaignhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
