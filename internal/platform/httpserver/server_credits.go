package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	ledgererrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"
	ledgerhttp "agencyx/contexts/finance-core/credit-ledger-service/transport/http"
)

func (s *Server) registerCreditRoutes() {
	s.mux.HandleFunc("GET /v1/credits/{user_id}/balance", s.handleCreditBalance)
	s.mux.HandleFunc("GET /v1/credits/{user_id}/transactions", s.handleCreditTransactions)
	s.mux.HandleFunc("POST /v1/credits/{user_id}/grant", s.handleCreditGrant)
}

func (s *Server) handleCreditBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	resp, err := s.ledger.Handler.BalanceHandler(r.Context(), userID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreditTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeLedgerError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.ledger.Handler.TransactionHistoryHandler(r.Context(), userID, limit)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreditGrant(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	var req ledgerhttp.GrantCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.GrantCreditsHandler(r.Context(), userID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrAccountNotFound):
		writeLedgerError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrInsufficientCredits):
		writeLedgerError(w, http.StatusPaymentRequired, "insufficient_credits", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidAmount),
		errors.Is(err, ledgererrors.ErrInvalidUserID):
		writeLedgerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
