package queries

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/adapters/memory"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
)

func seedCampaigns(t *testing.T, store *memory.Store, userID string, count int) []string {
	t.Helper()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("campaign-%s-%d", userID, i)
		err := store.SaveCampaign(context.Background(), entities.CampaignRecord{
			CampaignID: id,
			UserID:     userID,
			Title:      fmt.Sprintf("Campaign %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("seed campaign: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestGetCampaignEnforcesOwnership(t *testing.T) {
	store := memory.NewStore()
	ids := seedCampaigns(t, store, "user-1", 1)
	useCase := GetCampaignUseCase{Archive: store}

	record, err := useCase.Execute(context.Background(), GetCampaignQuery{
		UserID:     "user-1",
		CampaignID: ids[0],
	})
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if record.CampaignID != ids[0] {
		t.Fatalf("unexpected campaign %q", record.CampaignID)
	}

	_, err = useCase.Execute(context.Background(), GetCampaignQuery{
		UserID:     "user-2",
		CampaignID: ids[0],
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected foreign campaign to read as not found, got %v", err)
	}
}

func TestGetCampaignUnknownID(t *testing.T) {
	useCase := GetCampaignUseCase{Archive: memory.NewStore()}

	_, err := useCase.Execute(context.Background(), GetCampaignQuery{
		UserID:     "user-1",
		CampaignID: "missing",
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListCampaignsNewestFirstAndScoped(t *testing.T) {
	store := memory.NewStore()
	seedCampaigns(t, store, "user-1", 3)
	seedCampaigns(t, store, "user-2", 2)
	useCase := ListCampaignsUseCase{Archive: store}

	records, err := useCase.Execute(context.Background(), ListCampaignsQuery{UserID: "user-1"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 campaigns for user-1, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatal("expected newest-first ordering")
		}
	}
	for _, record := range records {
		if record.UserID != "user-1" {
			t.Fatalf("expected only user-1 campaigns, got %q", record.UserID)
		}
	}
}

func TestListCampaignsHonorsLimit(t *testing.T) {
	store := memory.NewStore()
	seedCampaigns(t, store, "user-1", 5)
	useCase := ListCampaignsUseCase{Archive: store}

	records, err := useCase.Execute(context.Background(), ListCampaignsQuery{UserID: "user-1", Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected limit of 2 applied, got %d", len(records))
	}
}

func TestListCampaignsRequiresIdentity(t *testing.T) {
	useCase := ListCampaignsUseCase{Archive: memory.NewStore()}

	_, err := useCase.Execute(context.Background(), ListCampaignsQuery{})
	if !errors.Is(err, domainerrors.ErrUserIdentityRequired) {
		t.Fatalf("expected identity error, got %v", err)
	}
}
