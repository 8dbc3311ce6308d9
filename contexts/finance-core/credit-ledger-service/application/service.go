package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/domain/entities"
	domainerrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"
	"agencyx/contexts/finance-core/credit-ledger-service/ports"
	contractsv1 "agencyx/contracts/gen/events/v1"
)

// Service is the ledger's single application surface. The orchestrator
// consumes Debit/Credit through a port; the HTTP adapter exposes balance,
// history and manual grants.
type Service struct {
	Repo   ports.Repository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) Debit(ctx context.Context, userID string, amount int, reason string) (entities.CreditAccount, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CreditAccount{}, domainerrors.ErrInvalidUserID
	}
	if amount <= 0 {
		return entities.CreditAccount{}, domainerrors.ErrInvalidAmount
	}

	txID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.CreditAccount{}, err
	}
	now := s.Clock.Now().UTC()

	account, err := s.Repo.ApplyDebit(ctx, entities.CreditTransaction{
		TransactionID: txID,
		UserID:        userID,
		Type:          entities.TransactionTypeDebit,
		Amount:        amount,
		Reason:        strings.TrimSpace(reason),
		OccurredAt:    now,
	})
	if err != nil {
		return entities.CreditAccount{}, err
	}

	if err := s.appendLedgerEvent(ctx, contractsv1.EventTypeCreditsDebited, txID, userID, amount, account.Balance, now); err != nil {
		return entities.CreditAccount{}, err
	}

	resolveLogger(s.Logger).Info("credits debited",
		"event", "credits_debited",
		"module", "finance-core/credit-ledger-service",
		"layer", "application",
		"user_id", userID,
		"amount", amount,
		"balance_after", account.Balance,
	)
	return account, nil
}

func (s Service) Credit(ctx context.Context, userID string, amount int, reason string) (entities.CreditAccount, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CreditAccount{}, domainerrors.ErrInvalidUserID
	}
	if amount <= 0 {
		return entities.CreditAccount{}, domainerrors.ErrInvalidAmount
	}

	txID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.CreditAccount{}, err
	}
	now := s.Clock.Now().UTC()

	account, err := s.Repo.ApplyCredit(ctx, entities.CreditTransaction{
		TransactionID: txID,
		UserID:        userID,
		Type:          entities.TransactionTypeCredit,
		Amount:        amount,
		Reason:        strings.TrimSpace(reason),
		OccurredAt:    now,
	})
	if err != nil {
		return entities.CreditAccount{}, err
	}

	if err := s.appendLedgerEvent(ctx, contractsv1.EventTypeCreditsGranted, txID, userID, amount, account.Balance, now); err != nil {
		return entities.CreditAccount{}, err
	}

	resolveLogger(s.Logger).Info("credits granted",
		"event", "credits_granted",
		"module", "finance-core/credit-ledger-service",
		"layer", "application",
		"user_id", userID,
		"amount", amount,
		"balance_after", account.Balance,
	)
	return account, nil
}

func (s Service) Balance(ctx context.Context, userID string) (entities.CreditAccount, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CreditAccount{}, domainerrors.ErrInvalidUserID
	}
	return s.Repo.GetAccount(ctx, userID)
}

func (s Service) Transactions(ctx context.Context, userID string, limit int) ([]entities.CreditTransaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.ListTransactions(ctx, userID, limit)
}

func (s Service) appendLedgerEvent(
	ctx context.Context,
	eventType string,
	txID string,
	userID string,
	amount int,
	balanceAfter int,
	occurredAt time.Time,
) error {
	if s.Outbox == nil {
		return nil
	}
	eventID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(map[string]any{
		"transaction_id": txID,
		"user_id":        userID,
		"amount":         amount,
		"balance_after":  balanceAfter,
	})
	if err != nil {
		return err
	}
	return s.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt,
		SourceService: "credit-ledger-service",
		SchemaVersion: 1,
		PartitionKey:  userID,
		Data:          data,
	})
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
