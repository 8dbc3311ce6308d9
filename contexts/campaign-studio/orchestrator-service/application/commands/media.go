package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

var allowedInspirationExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

type RequestInspirationUploadCommand struct {
	UserID   string
	FileName string
}

type RequestInspirationUploadResult struct {
	UploadURL  string    `json:"upload_url"`
	ObjectPath string    `json:"object_path"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// RequestInspirationUploadUseCase issues a presigned PUT for an inspiration
// image. The object path is namespaced per user so one caller cannot presign
// into another caller's prefix.
type RequestInspirationUploadUseCase struct {
	Store       ports.ObjectStore
	IDGenerator ports.IDGenerator
	Clock       ports.Clock
	UploadTTL   time.Duration
	Logger      *slog.Logger
}

func (u RequestInspirationUploadUseCase) Execute(ctx context.Context, cmd RequestInspirationUploadCommand) (RequestInspirationUploadResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.UserID) == "" {
		return RequestInspirationUploadResult{}, domainerrors.ErrUserIdentityRequired
	}
	ext := strings.ToLower(path.Ext(strings.TrimSpace(cmd.FileName)))
	if _, ok := allowedInspirationExtensions[ext]; !ok {
		return RequestInspirationUploadResult{}, fmt.Errorf("%w: unsupported file extension %q", domainerrors.ErrInvalidUploadRequest, ext)
	}

	uploadID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RequestInspirationUploadResult{}, err
	}

	ttl := u.UploadTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	objectPath := fmt.Sprintf("inspiration/%s/%s%s", cmd.UserID, uploadID, ext)

	uploadURL, err := u.Store.PresignUpload(ctx, objectPath, ttl)
	if err != nil {
		logger.Error("inspiration upload presign failed",
			"event", "inspiration_upload_presign_failed",
			"module", "campaign-studio/orchestrator-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return RequestInspirationUploadResult{}, err
	}

	logger.Info("inspiration upload presigned",
		"event", "inspiration_upload_presigned",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"object_path", objectPath,
	)
	return RequestInspirationUploadResult{
		UploadURL:  uploadURL,
		ObjectPath: objectPath,
		ExpiresAt:  u.now().Add(ttl),
	}, nil
}

func (u RequestInspirationUploadUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
