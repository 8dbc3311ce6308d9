package workers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/adapters/memory"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
	contractsv1 "agencyx/contracts/gen/events/v1"
)

type capturingPublisher struct {
	topics    []string
	published []ports.EventEnvelope
	failAfter int
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.failAfter > 0 && len(p.published) >= p.failAfter {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, topic)
	p.published = append(p.published, event)
	return nil
}

func appendEvent(t *testing.T, store *memory.Store, eventID string) {
	t.Helper()
	data, err := json.Marshal(map[string]string{"campaign_id": "c-" + eventID})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	err = store.AppendOutbox(context.Background(), ports.EventEnvelope{
		EventID:       eventID,
		EventType:     contractsv1.EventTypeCampaignGenerated,
		OccurredAt:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		SourceService: "campaign-studio/orchestrator-service",
		SchemaVersion: 1,
		PartitionKey:  "user-1",
		Data:          data,
	})
	if err != nil {
		t.Fatalf("append outbox: %v", err)
	}
}

func TestOutboxRelayPublishesPendingInOrder(t *testing.T) {
	store := memory.NewStore()
	appendEvent(t, store, "evt-1")
	appendEvent(t, store, "evt-2")
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.published))
	}
	if publisher.published[0].EventID != "evt-1" || publisher.published[1].EventID != "evt-2" {
		t.Fatal("expected insertion-order publishing")
	}
	if publisher.topics[0] != "campaign-studio.campaigns" {
		t.Fatalf("unexpected topic %q", publisher.topics[0])
	}
	if got := store.PendingOutboxCount(); got != 0 {
		t.Fatalf("expected all rows marked published, got %d pending", got)
	}
}

func TestOutboxRelayStopsAtFirstFailure(t *testing.T) {
	store := memory.NewStore()
	appendEvent(t, store, "evt-1")
	appendEvent(t, store, "evt-2")
	appendEvent(t, store, "evt-3")
	publisher := &capturingPublisher{failAfter: 1}
	relay := OutboxRelay{Outbox: store, Publisher: publisher}

	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatal("expected the relay to surface the publish failure")
	}
	if got := store.PendingOutboxCount(); got != 2 {
		t.Fatalf("expected the failed row and its successors to stay pending, got %d", got)
	}

	// The next run retries from the failed row.
	publisher.failAfter = 0
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("retry run failed: %v", err)
	}
	if got := store.PendingOutboxCount(); got != 0 {
		t.Fatalf("expected retry to drain the outbox, got %d pending", got)
	}
}

func TestOutboxRelayIdleRunIsNoop(t *testing.T) {
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: memory.NewStore(), Publisher: publisher}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("idle run failed: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected nothing published, got %d", len(publisher.published))
	}
}
