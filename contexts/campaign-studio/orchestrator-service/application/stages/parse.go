package stages

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
)

// decodeStrict parses a completion that was instructed to return JSON only.
// Models occasionally wrap the payload in a markdown fence; strip it before
// giving up.
func decodeStrict(raw string, target any) error {
	candidate := stripFence(raw)
	if err := json.Unmarshal([]byte(candidate), target); err != nil {
		return err
	}
	return nil
}

func stripFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// truncateSummary cuts on a rune boundary so a multi-byte character at the
// limit never yields invalid UTF-8.
func truncateSummary(raw string, limit int) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) <= limit {
		return trimmed
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut]
}

func upstreamFailure(stage string, err error) error {
	return fmt.Errorf("%s: %w: %w", stage, domainerrors.ErrUpstreamService, err)
}

func malformedOutput(stage string, err error) error {
	return fmt.Errorf("%s: %w: %v", stage, domainerrors.ErrMalformedStageOutput, err)
}
