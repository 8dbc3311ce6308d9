package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"agencyx/contexts/campaign-studio/brand-service/adapters/memory"
	domainerrors "agencyx/contexts/campaign-studio/brand-service/domain/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestService() Service {
	return Service{
		Repo:  memory.NewStore(),
		Clock: fixedClock{at: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
	}
}

func TestUpsertBrandRoundTrip(t *testing.T) {
	service := newTestService()

	saved, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{
		UserID:              "user-1",
		Name:                "  Mithai House  ",
		PrimaryColor:        "#D97706",
		Voice:               "warm",
		Industry:            "confectionery",
		ContactFields:       map[string]string{"phone": "+91 98765 43210"},
		ContactStripEnabled: true,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if saved.Name != "Mithai House" {
		t.Fatalf("expected trimmed name, got %q", saved.Name)
	}

	loaded, err := service.GetBrand(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.PrimaryColor != "#D97706" || !loaded.ContactStripEnabled {
		t.Fatalf("unexpected stored profile %+v", loaded)
	}
}

func TestUpsertBrandUpdatesExistingProfile(t *testing.T) {
	service := newTestService()

	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{UserID: "user-1", Name: "First"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{UserID: "user-1", Name: "Second"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	loaded, err := service.GetBrand(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Name != "Second" {
		t.Fatalf("expected updated name, got %q", loaded.Name)
	}
}

func TestUpsertBrandValidation(t *testing.T) {
	service := newTestService()

	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{Name: "x"}); !errors.Is(err, domainerrors.ErrUserIdentityRequired) {
		t.Fatalf("expected identity error, got %v", err)
	}
	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{UserID: "user-1", Name: "  "}); !errors.Is(err, domainerrors.ErrInvalidBrandName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{UserID: "user-1", Name: "x", PrimaryColor: "orange"}); !errors.Is(err, domainerrors.ErrInvalidPrimaryColor) {
		t.Fatalf("expected invalid color, got %v", err)
	}
	if _, err := service.UpsertBrand(context.Background(), UpsertBrandCommand{UserID: "user-1", Name: "x", PrimaryColor: "#F60"}); err != nil {
		t.Fatalf("expected short hex accepted, got %v", err)
	}
}

func TestGetBrandMissingProfile(t *testing.T) {
	service := newTestService()

	_, err := service.GetBrand(context.Background(), "nobody")
	if !errors.Is(err, domainerrors.ErrBrandNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
