package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/domain/entities"
	domainerrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"
	"agencyx/contexts/finance-core/credit-ledger-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type accountModel struct {
	UserID    string `gorm:"primaryKey;column:user_id"`
	Balance   int    `gorm:"column:balance"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (accountModel) TableName() string { return "credit_accounts" }

type transactionModel struct {
	TransactionID string `gorm:"primaryKey;column:transaction_id"`
	UserID        string `gorm:"column:user_id;index"`
	Type          string `gorm:"column:type"`
	Amount        int    `gorm:"column:amount"`
	BalanceAfter  int    `gorm:"column:balance_after"`
	Reason        string `gorm:"column:reason"`
	OccurredAt    time.Time
}

func (transactionModel) TableName() string { return "credit_transactions" }

type outboxModel struct {
	OutboxID    string `gorm:"primaryKey;column:outbox_id"`
	EventType   string `gorm:"column:event_type"`
	Payload     []byte `gorm:"column:payload"`
	Status      string `gorm:"column:status;index"`
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func (outboxModel) TableName() string { return "credit_ledger_outbox" }

func (r *Repository) GetAccount(ctx context.Context, userID string) (entities.CreditAccount, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CreditAccount{}, domainerrors.ErrAccountNotFound
		}
		return entities.CreditAccount{}, err
	}
	return row.toEntity(), nil
}

// ApplyDebit locks the account row, checks the balance, and writes both the
// balance change and the transaction in one DB transaction. No partial charge
// can escape this function.
func (r *Repository) ApplyDebit(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error) {
	var result accountModel
	err := r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		var row accountModel
		err := dbtx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", tx.UserID).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrInsufficientCredits
			}
			return err
		}
		if row.Balance < tx.Amount {
			return domainerrors.ErrInsufficientCredits
		}

		row.Balance -= tx.Amount
		row.UpdatedAt = tx.OccurredAt
		if err := dbtx.Save(&row).Error; err != nil {
			return err
		}

		record := transactionModelFromEntity(tx)
		record.BalanceAfter = row.Balance
		if err := dbtx.Create(&record).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidAmount
			}
			return err
		}
		result = row
		return nil
	})
	if err != nil {
		return entities.CreditAccount{}, err
	}
	return result.toEntity(), nil
}

func (r *Repository) ApplyCredit(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error) {
	var result accountModel
	err := r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		var row accountModel
		err := dbtx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", tx.UserID).
			First(&row).
			Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = accountModel{
				UserID:    tx.UserID,
				CreatedAt: tx.OccurredAt,
			}
		} else if err != nil {
			return err
		}

		row.Balance += tx.Amount
		row.UpdatedAt = tx.OccurredAt
		if err := dbtx.Save(&row).Error; err != nil {
			return err
		}

		record := transactionModelFromEntity(tx)
		record.BalanceAfter = row.Balance
		if err := dbtx.Create(&record).Error; err != nil {
			return err
		}
		result = row
		return nil
	})
	if err != nil {
		return entities.CreditAccount{}, err
	}
	return result.toEntity(), nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID string, limit int) ([]entities.CreditTransaction, error) {
	var rows []transactionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.CreditTransaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:  envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt,
		}).
		Error
}

func (m accountModel) toEntity() entities.CreditAccount {
	return entities.CreditAccount{
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m transactionModel) toEntity() entities.CreditTransaction {
	return entities.CreditTransaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          entities.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceAfter:  m.BalanceAfter,
		Reason:        m.Reason,
		OccurredAt:    m.OccurredAt,
	}
}

func transactionModelFromEntity(tx entities.CreditTransaction) transactionModel {
	return transactionModel{
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		BalanceAfter:  tx.BalanceAfter,
		Reason:        tx.Reason,
		OccurredAt:    tx.OccurredAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
