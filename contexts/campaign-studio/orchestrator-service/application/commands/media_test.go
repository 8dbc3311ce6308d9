package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/adapters/memory"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
)

func newUploadUseCase() RequestInspirationUploadUseCase {
	return RequestInspirationUploadUseCase{
		Store:       memory.Presigner{},
		IDGenerator: &sequenceIDs{},
		Clock:       fixedClock{at: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
	}
}

func TestRequestInspirationUploadPresignsUserScopedPath(t *testing.T) {
	useCase := newUploadUseCase()

	result, err := useCase.Execute(context.Background(), RequestInspirationUploadCommand{
		UserID:   "user-1",
		FileName: "reference.PNG",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(result.ObjectPath, "inspiration/user-1/") {
		t.Fatalf("expected user-scoped object path, got %q", result.ObjectPath)
	}
	if !strings.HasSuffix(result.ObjectPath, ".png") {
		t.Fatalf("expected lowercased extension, got %q", result.ObjectPath)
	}
	if !strings.Contains(result.UploadURL, result.ObjectPath) {
		t.Fatalf("expected upload url to target the object path, got %q", result.UploadURL)
	}
	want := time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC)
	if !result.ExpiresAt.Equal(want) {
		t.Fatalf("expected default 15m expiry %v, got %v", want, result.ExpiresAt)
	}
}

func TestRequestInspirationUploadRejectsUnsupportedExtension(t *testing.T) {
	useCase := newUploadUseCase()

	_, err := useCase.Execute(context.Background(), RequestInspirationUploadCommand{
		UserID:   "user-1",
		FileName: "malware.exe",
	})
	if !errors.Is(err, domainerrors.ErrInvalidUploadRequest) {
		t.Fatalf("expected invalid upload request, got %v", err)
	}
}

func TestRequestInspirationUploadRequiresIdentity(t *testing.T) {
	useCase := newUploadUseCase()

	_, err := useCase.Execute(context.Background(), RequestInspirationUploadCommand{
		FileName: "reference.png",
	})
	if !errors.Is(err, domainerrors.ErrUserIdentityRequired) {
		t.Fatalf("expected identity error, got %v", err)
	}
}
