package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

const strategyInstruction = `You are the Strategy & Deconstruction Agent for a marketing agency.

HIERARCHY OF FOCUS PROTOCOL:
1. PRIMARY SUBJECT (The Hero): What is the main product/service/topic?
2. SECONDARY CONTEXT (The Atmosphere): What's the occasion/season/theme?
3. BRAND & CTA (The Details): Company name, offers, conditions, contact info

Your task: Analyze the input and create a DETAILED strategic brief.

Return ONLY valid JSON with this structure:
{
  "intent": "<from the intent analysis>",
  "strategic_brief": {
    "campaign_goal": "<specific, measurable goal>",
    "target_audience": "<detailed persona description>",
    "deconstructed_elements": {
      "primary_subject": "<the hero>",
      "secondary_context": "<the atmosphere>",
      "call_to_action_details": "<offers, tiers, conditions>",
      "brand_name": "<from brand settings or input>",
      "brand_exclusions": "<any mentioned exclusions>"
    },
    "suggested_platforms": ["<platform1>", "<platform2>"]
  }
}`

// StrategyBuilder is Stage 2. Unlike Stage 1 there is no safe default for a
// strategic brief, so malformed output is fatal to the run.
type StrategyBuilder struct {
	Gateway     ports.CompletionGateway
	Model       string
	Temperature float64
	Logger      *slog.Logger
}

func (b StrategyBuilder) Build(
	ctx context.Context,
	rawInput string,
	intent entities.IntentResult,
	brand entities.BrandSettings,
) (entities.StrategicBrief, error) {
	logger := application.ResolveLogger(b.Logger)

	intentJSON, err := json.Marshal(intent)
	if err != nil {
		return entities.StrategicBrief{}, err
	}
	brandJSON, err := json.Marshal(brand)
	if err != nil {
		return entities.StrategicBrief{}, err
	}

	payload := fmt.Sprintf(`USER INPUT: %s

INTENT CLASSIFICATION: %s

BRAND SETTINGS: %s

Create a comprehensive strategic brief following the Hierarchy of Focus Protocol.`,
		rawInput, intentJSON, brandJSON)

	completion, err := b.Gateway.Complete(ctx, ports.CompletionInput{
		Model:       b.Model,
		Instruction: strategyInstruction,
		Payload:     payload,
		Temperature: b.temperature(),
	})
	if err != nil {
		return entities.StrategicBrief{}, upstreamFailure("strategy builder", err)
	}

	var brief entities.StrategicBrief
	if err := decodeStrict(completion, &brief); err != nil {
		return entities.StrategicBrief{}, malformedOutput("strategy builder", err)
	}

	// The brief's intent must stay inside the closed enum and agree with
	// Stage 1 when the model omitted it.
	if !brief.Intent.Valid() {
		brief.Intent = intent.Classification
	}

	logger.Info("strategic brief built",
		"event", "strategic_brief_built",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"intent", string(brief.Intent),
		"platform_count", len(brief.Brief.SuggestedPlatforms),
	)
	return brief, nil
}

func (b StrategyBuilder) temperature() float64 {
	if b.Temperature > 0 {
		return b.Temperature
	}
	return 0.7
}
