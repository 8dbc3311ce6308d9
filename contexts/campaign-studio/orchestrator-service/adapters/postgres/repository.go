package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

type campaignModel struct {
	CampaignID        string `gorm:"primaryKey;column:campaign_id"`
	UserID            string `gorm:"column:user_id;index"`
	Title             string `gorm:"column:title"`
	RawInput          string `gorm:"column:raw_input"`
	Blueprint         []byte `gorm:"column:blueprint;type:jsonb"`
	GeneratedImageURL string `gorm:"column:generated_image_url"`
	Trace             []byte `gorm:"column:trace;type:jsonb"`
	CreatedAt         time.Time
}

func (campaignModel) TableName() string { return "campaigns" }

type outboxModel struct {
	OutboxID    string `gorm:"primaryKey;column:outbox_id"`
	EventType   string `gorm:"column:event_type"`
	Payload     []byte `gorm:"column:payload"`
	Status      string `gorm:"column:status;index"`
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func (outboxModel) TableName() string { return "campaign_outbox" }

func (r *Repository) SaveCampaign(ctx context.Context, record entities.CampaignRecord) error {
	row, err := campaignModelFromEntity(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.CampaignRecord, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CampaignRecord{}, domainerrors.ErrCampaignNotFound
		}
		return entities.CampaignRecord{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListCampaigns(ctx context.Context, userID string, limit int) ([]entities.CampaignRecord, error) {
	var rows []campaignModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.CampaignRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, record)
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

func campaignModelFromEntity(record entities.CampaignRecord) (campaignModel, error) {
	blueprint, err := json.Marshal(record.Blueprint)
	if err != nil {
		return campaignModel{}, err
	}
	trace, err := json.Marshal(record.Trace)
	if err != nil {
		return campaignModel{}, err
	}
	return campaignModel{
		CampaignID:        record.CampaignID,
		UserID:            record.UserID,
		Title:             record.Title,
		RawInput:          record.RawInput,
		Blueprint:         blueprint,
		GeneratedImageURL: record.GeneratedImageURL,
		Trace:             trace,
		CreatedAt:         record.CreatedAt,
	}, nil
}

func (m campaignModel) toEntity() (entities.CampaignRecord, error) {
	var blueprint entities.MasterBlueprint
	if len(m.Blueprint) > 0 {
		if err := json.Unmarshal(m.Blueprint, &blueprint); err != nil {
			return entities.CampaignRecord{}, err
		}
	}
	var trace entities.PipelineTrace
	if len(m.Trace) > 0 {
		if err := json.Unmarshal(m.Trace, &trace); err != nil {
			return entities.CampaignRecord{}, err
		}
	}
	return entities.CampaignRecord{
		CampaignID:        m.CampaignID,
		UserID:            m.UserID,
		Title:             m.Title,
		RawInput:          m.RawInput,
		Blueprint:         blueprint,
		GeneratedImageURL: m.GeneratedImageURL,
		Trace:             trace,
		CreatedAt:         m.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
