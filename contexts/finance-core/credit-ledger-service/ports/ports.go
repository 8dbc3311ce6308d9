package ports

import (
	"context"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/domain/entities"
	contractsv1 "agencyx/contracts/gen/events/v1"
)

// Repository owns atomic balance movement. ApplyDebit must fail without any
// partial effect when the balance is short; both mutations append the
// transaction row in the same atomic unit as the balance change.
type Repository interface {
	GetAccount(ctx context.Context, userID string) (entities.CreditAccount, error)
	ApplyDebit(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error)
	ApplyCredit(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]entities.CreditTransaction, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
