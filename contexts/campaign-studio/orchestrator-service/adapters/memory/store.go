package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

// Store is the in-memory campaign archive and outbox used by tests and the
// in-memory module wiring.
type Store struct {
	mu        sync.Mutex
	campaigns map[string]entities.CampaignRecord
	outbox    []outboxRow
	published map[string]time.Time
}

type outboxRow struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

func NewStore() *Store {
	return &Store{
		campaigns: make(map[string]entities.CampaignRecord),
		published: make(map[string]time.Time),
	}
}

var _ ports.CampaignArchive = (*Store)(nil)
var _ ports.OutboxWriter = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)

func (s *Store) SaveCampaign(_ context.Context, record entities.CampaignRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[record.CampaignID] = record
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.CampaignRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.campaigns[campaignID]
	if !ok {
		return entities.CampaignRecord{}, domainerrors.ErrCampaignNotFound
	}
	return record, nil
}

func (s *Store) ListCampaigns(_ context.Context, userID string, limit int) ([]entities.CampaignRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]entities.CampaignRecord, 0)
	for _, record := range s.campaigns {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, outboxRow{
		OutboxID:  envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		CreatedAt: envelope.OccurredAt,
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if _, done := s.published[row.OutboxID]; done {
			continue
		}
		pending = append(pending, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
		if limit > 0 && len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published[outboxID] = publishedAt
	return nil
}

// PendingOutboxCount is a test helper.
func (s *Store) PendingOutboxCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, row := range s.outbox {
		if _, done := s.published[row.OutboxID]; !done {
			count++
		}
	}
	return count
}
