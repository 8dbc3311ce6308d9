package memory

import (
	"context"
	"time"

	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

// Presigner fakes object-store presigning for tests and local wiring.
type Presigner struct {
	BaseURL string
}

var _ ports.ObjectStore = Presigner{}

func (p Presigner) PresignUpload(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	base := p.BaseURL
	if base == "" {
		base = "https://uploads.example.test"
	}
	return base + "/" + objectPath + "?signature=dev", nil
}
