package entities

import "time"

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// CreditAccount is one user's consumable balance. Generations debit it,
// template rewards and refunds credit it.
type CreditAccount struct {
	UserID    string
	Balance   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreditTransaction is the immutable record of one balance movement.
type CreditTransaction struct {
	TransactionID string
	UserID        string
	Type          TransactionType
	Amount        int
	BalanceAfter  int
	Reason        string
	OccurredAt    time.Time
}
