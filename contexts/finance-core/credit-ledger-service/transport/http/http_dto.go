package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

type GrantCreditsRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type GrantCreditsResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

type TransactionDTO struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Amount        int    `json:"amount"`
	BalanceAfter  int    `json:"balance_after"`
	Reason        string `json:"reason"`
	OccurredAt    string `json:"occurred_at"`
}

type TransactionHistoryResponse struct {
	UserID string           `json:"user_id"`
	Items  []TransactionDTO `json:"items"`
}
