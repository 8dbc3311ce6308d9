package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/application"
	httptransport "agencyx/contexts/finance-core/credit-ledger-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// BalanceHandler godoc
// @Summary Get credit balance
// @Description Returns the consumable credit balance for a user.
// @Tags finance-core/credit-ledger
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} http.BalanceResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /v1/credits/{user_id}/balance [get]
func (h Handler) BalanceHandler(ctx context.Context, userID string) (httptransport.BalanceResponse, error) {
	account, err := h.Service.Balance(ctx, userID)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}
	return httptransport.BalanceResponse{
		UserID:  account.UserID,
		Balance: account.Balance,
	}, nil
}

// GrantCreditsHandler godoc
// @Summary Grant credits
// @Description Credits a user account (purchases, rewards, manual corrections).
// @Tags finance-core/credit-ledger
// @Accept json
// @Produce json
// @Param user_id path string true "User id"
// @Param request body http.GrantCreditsRequest true "Grant payload"
// @Success 200 {object} http.GrantCreditsResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /v1/credits/{user_id}/grant [post]
func (h Handler) GrantCreditsHandler(
	ctx context.Context,
	userID string,
	req httptransport.GrantCreditsRequest,
) (httptransport.GrantCreditsResponse, error) {
	reason := req.Reason
	if reason == "" {
		reason = "manual grant"
	}
	account, err := h.Service.Credit(ctx, userID, req.Amount, reason)
	if err != nil {
		return httptransport.GrantCreditsResponse{}, err
	}
	return httptransport.GrantCreditsResponse{
		UserID:  account.UserID,
		Balance: account.Balance,
	}, nil
}

// TransactionHistoryHandler godoc
// @Summary List credit transactions
// @Description Returns recent balance movements, newest first.
// @Tags finance-core/credit-ledger
// @Produce json
// @Param user_id path string true "User id"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} http.TransactionHistoryResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /v1/credits/{user_id}/transactions [get]
func (h Handler) TransactionHistoryHandler(
	ctx context.Context,
	userID string,
	limit int,
) (httptransport.TransactionHistoryResponse, error) {
	items, err := h.Service.Transactions(ctx, userID, limit)
	if err != nil {
		return httptransport.TransactionHistoryResponse{}, err
	}
	resp := httptransport.TransactionHistoryResponse{
		UserID: userID,
		Items:  make([]httptransport.TransactionDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, httptransport.TransactionDTO{
			TransactionID: item.TransactionID,
			Type:          string(item.Type),
			Amount:        item.Amount,
			BalanceAfter:  item.BalanceAfter,
			Reason:        item.Reason,
			OccurredAt:    item.OccurredAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
