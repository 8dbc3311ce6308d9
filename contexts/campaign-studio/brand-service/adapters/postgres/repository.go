package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agencyx/contexts/campaign-studio/brand-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/brand-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

type brandModel struct {
	UserID              string `gorm:"primaryKey;column:user_id"`
	Name                string `gorm:"column:name"`
	PrimaryColor        string `gorm:"column:primary_color"`
	Voice               string `gorm:"column:voice"`
	Mission             string `gorm:"column:mission"`
	Tagline             string `gorm:"column:tagline"`
	Industry            string `gorm:"column:industry"`
	Description         string `gorm:"column:description"`
	ContactFields       []byte `gorm:"column:contact_fields;type:jsonb"`
	ContactStripEnabled bool   `gorm:"column:contact_strip_enabled"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (brandModel) TableName() string { return "brand_profiles" }

func (r *Repository) UpsertBrand(ctx context.Context, profile entities.BrandProfile) (entities.BrandProfile, error) {
	row, err := brandModelFromEntity(profile)
	if err != nil {
		return entities.BrandProfile{}, err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "primary_color", "voice", "mission", "tagline",
				"industry", "description", "contact_fields",
				"contact_strip_enabled", "updated_at",
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return entities.BrandProfile{}, err
	}
	return r.GetBrand(ctx, profile.UserID)
}

func (r *Repository) GetBrand(ctx context.Context, userID string) (entities.BrandProfile, error) {
	var row brandModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BrandProfile{}, domainerrors.ErrBrandNotFound
		}
		return entities.BrandProfile{}, err
	}
	return row.toEntity()
}

func brandModelFromEntity(profile entities.BrandProfile) (brandModel, error) {
	contactFields, err := json.Marshal(profile.ContactFields)
	if err != nil {
		return brandModel{}, err
	}
	return brandModel{
		UserID:              profile.UserID,
		Name:                profile.Name,
		PrimaryColor:        profile.PrimaryColor,
		Voice:               profile.Voice,
		Mission:             profile.Mission,
		Tagline:             profile.Tagline,
		Industry:            profile.Industry,
		Description:         profile.Description,
		ContactFields:       contactFields,
		ContactStripEnabled: profile.ContactStripEnabled,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}, nil
}

func (m brandModel) toEntity() (entities.BrandProfile, error) {
	var contactFields map[string]string
	if len(m.ContactFields) > 0 {
		if err := json.Unmarshal(m.ContactFields, &contactFields); err != nil {
			return entities.BrandProfile{}, err
		}
	}
	return entities.BrandProfile{
		UserID:              m.UserID,
		Name:                m.Name,
		PrimaryColor:        m.PrimaryColor,
		Voice:               m.Voice,
		Mission:             m.Mission,
		Tagline:             m.Tagline,
		Industry:            m.Industry,
		Description:         m.Description,
		ContactFields:       contactFields,
		ContactStripEnabled: m.ContactStripEnabled,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}
