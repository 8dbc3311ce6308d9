package v1

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical, versioned event envelope shared by every
// Agency X context. Events crossing a context boundary must be wrapped in
// this shape; the envelope itself must stay backward compatible.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	SourceService string          `json:"source_service"`
	TraceID       string          `json:"trace_id"`
	SchemaVersion int             `json:"schema_version"`
	PartitionKey  string          `json:"partition_key"`
	Data          json.RawMessage `json:"data"`
}

// Event types published by the campaign-studio and finance-core contexts.
const (
	EventTypeCampaignGenerated = "campaign.generated"
	EventTypeCreditsGranted    = "credits.granted"
	EventTypeCreditsDebited    = "credits.debited"
)
