package application

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"agencyx/contexts/campaign-studio/template-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/template-service/domain/errors"
	"agencyx/contexts/campaign-studio/template-service/ports"
)

var allowedTemplateExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".pdf":  {},
}

type Service struct {
	Repo          ports.Repository
	Store         ports.ObjectStore
	Ledger        ports.CreditLedger
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	RewardCredits int
	UploadTTL     time.Duration
	Logger        *slog.Logger
}

type RequestUploadCommand struct {
	UploaderID string
	Title      string
	Niche      string
	FileName   string
}

type RequestUploadResult struct {
	Template  entities.Template
	UploadURL string
	ExpiresAt time.Time
}

// RequestUpload registers a pending template and hands back a presigned PUT
// for its asset. No reward is granted until the upload is confirmed.
func (s Service) RequestUpload(ctx context.Context, cmd RequestUploadCommand) (RequestUploadResult, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(cmd.UploaderID) == "" {
		return RequestUploadResult{}, domainerrors.ErrUserIdentityRequired
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return RequestUploadResult{}, domainerrors.ErrInvalidTemplate
	}
	ext := strings.ToLower(path.Ext(strings.TrimSpace(cmd.FileName)))
	if _, ok := allowedTemplateExtensions[ext]; !ok {
		return RequestUploadResult{}, fmt.Errorf("%w: unsupported file extension %q", domainerrors.ErrInvalidUploadRequest, ext)
	}

	templateID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return RequestUploadResult{}, err
	}

	now := s.now()
	template := entities.Template{
		TemplateID: templateID,
		UploaderID: cmd.UploaderID,
		Title:      strings.TrimSpace(cmd.Title),
		Niche:      strings.TrimSpace(cmd.Niche),
		AssetPath:  fmt.Sprintf("templates/%s/%s%s", cmd.UploaderID, templateID, ext),
		Status:     entities.TemplateStatusPendingUpload,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.CreateTemplate(ctx, template); err != nil {
		return RequestUploadResult{}, err
	}

	ttl := s.UploadTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	uploadURL, err := s.Store.PresignUpload(ctx, template.AssetPath, ttl)
	if err != nil {
		return RequestUploadResult{}, err
	}

	logger.Info("template upload requested",
		"event", "template_upload_requested",
		"module", "campaign-studio/template-service",
		"layer", "application",
		"template_id", templateID,
		"uploader_id", cmd.UploaderID,
	)
	return RequestUploadResult{
		Template:  template,
		UploadURL: uploadURL,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// ConfirmUpload verifies the asset exists, marks the template stored, and
// grants the uploader reward. The reward flag flips only after the credit
// lands: a confirm that stored the template but failed to credit stays open
// for retry, and a retry never re-credits a template whose flag is set.
func (s Service) ConfirmUpload(ctx context.Context, uploaderID string, templateID string) (entities.Template, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(uploaderID) == "" {
		return entities.Template{}, domainerrors.ErrUserIdentityRequired
	}

	template, err := s.Repo.GetTemplate(ctx, templateID)
	if err != nil {
		return entities.Template{}, err
	}
	if template.UploaderID != uploaderID {
		return entities.Template{}, domainerrors.ErrTemplateNotFound
	}
	if template.Status == entities.TemplateStatusStored && template.RewardGranted {
		return entities.Template{}, domainerrors.ErrAlreadyConfirmed
	}

	exists, err := s.Store.ObjectExists(ctx, template.AssetPath)
	if err != nil {
		return entities.Template{}, err
	}
	if !exists {
		return entities.Template{}, domainerrors.ErrAssetMissing
	}

	if template.Status != entities.TemplateStatusStored {
		template.Status = entities.TemplateStatusStored
		template.UpdatedAt = s.now()
		if err := s.Repo.UpdateTemplate(ctx, template); err != nil {
			return entities.Template{}, err
		}
	}

	if err := s.Ledger.Credit(ctx, uploaderID, s.rewardCredits(), "template upload reward"); err != nil {
		logger.Error("template reward grant failed, confirm stays retryable",
			"event", "template_reward_grant_failed",
			"module", "campaign-studio/template-service",
			"layer", "application",
			"template_id", templateID,
			"uploader_id", uploaderID,
			"error", err.Error(),
		)
		return entities.Template{}, err
	}

	template.RewardGranted = true
	template.UpdatedAt = s.now()
	if err := s.Repo.UpdateTemplate(ctx, template); err != nil {
		logger.Error("template reward flag persist failed after grant",
			"event", "template_reward_flag_persist_failed",
			"module", "campaign-studio/template-service",
			"layer", "application",
			"template_id", templateID,
			"uploader_id", uploaderID,
			"error", err.Error(),
		)
		return entities.Template{}, err
	}

	logger.Info("template upload confirmed",
		"event", "template_upload_confirmed",
		"module", "campaign-studio/template-service",
		"layer", "application",
		"template_id", templateID,
		"uploader_id", uploaderID,
		"reward_credits", s.rewardCredits(),
	)
	return template, nil
}

// TemplateListing pairs a stored template with a presigned GET for its
// asset, so gallery clients never touch the bucket directly.
type TemplateListing struct {
	Template    entities.Template
	DownloadURL string
}

func (s Service) ListTemplates(ctx context.Context, niche string, limit int) ([]TemplateListing, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	templates, err := s.Repo.ListTemplates(ctx, strings.TrimSpace(niche), limit)
	if err != nil {
		return nil, err
	}

	listings := make([]TemplateListing, 0, len(templates))
	for _, template := range templates {
		downloadURL, err := s.Store.PresignDownload(ctx, template.AssetPath, s.downloadTTL())
		if err != nil {
			return nil, err
		}
		listings = append(listings, TemplateListing{
			Template:    template,
			DownloadURL: downloadURL,
		})
	}
	return listings, nil
}

func (s Service) downloadTTL() time.Duration {
	return time.Hour
}

func (s Service) rewardCredits() int {
	if s.RewardCredits > 0 {
		return s.RewardCredits
	}
	return 2
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
