package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/campaign-studio/template-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/template-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

type templateModel struct {
	TemplateID    string `gorm:"primaryKey;column:template_id"`
	UploaderID    string `gorm:"column:uploader_id;index"`
	Title         string `gorm:"column:title"`
	Niche         string `gorm:"column:niche;index"`
	AssetPath     string `gorm:"column:asset_path"`
	Status        string `gorm:"column:status"`
	RewardGranted bool   `gorm:"column:reward_granted"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (templateModel) TableName() string { return "templates" }

func (r *Repository) CreateTemplate(ctx context.Context, template entities.Template) error {
	row := templateModelFromEntity(template)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidTemplate
		}
		return err
	}
	return nil
}

func (r *Repository) GetTemplate(ctx context.Context, templateID string) (entities.Template, error) {
	var row templateModel
	err := r.db.WithContext(ctx).
		Where("template_id = ?", strings.TrimSpace(templateID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Template{}, domainerrors.ErrTemplateNotFound
		}
		return entities.Template{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateTemplate(ctx context.Context, template entities.Template) error {
	row := templateModelFromEntity(template)
	result := r.db.WithContext(ctx).
		Model(&templateModel{}).
		Where("template_id = ?", template.TemplateID).
		Updates(map[string]any{
			"status":         row.Status,
			"reward_granted": row.RewardGranted,
			"updated_at":     row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTemplateNotFound
	}
	return nil
}

func (r *Repository) ListTemplates(ctx context.Context, niche string, limit int) ([]entities.Template, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", string(entities.TemplateStatusStored))
	if niche != "" {
		query = query.Where("niche = ?", niche)
	}

	var rows []templateModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Template, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func templateModelFromEntity(template entities.Template) templateModel {
	return templateModel{
		TemplateID:    template.TemplateID,
		UploaderID:    template.UploaderID,
		Title:         template.Title,
		Niche:         template.Niche,
		AssetPath:     template.AssetPath,
		Status:        string(template.Status),
		RewardGranted: template.RewardGranted,
		CreatedAt:     template.CreatedAt,
		UpdatedAt:     template.UpdatedAt,
	}
}

func (m templateModel) toEntity() entities.Template {
	return entities.Template{
		TemplateID:    m.TemplateID,
		UploaderID:    m.UploaderID,
		Title:         m.Title,
		Niche:         m.Niche,
		AssetPath:     m.AssetPath,
		Status:        entities.TemplateStatus(m.Status),
		RewardGranted: m.RewardGranted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
