package stages

import (
	"context"
	"log/slog"
	"strings"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

var intentCategoryHints = map[entities.IntentClassification]string{
	entities.IntentDirectResponseSale: "promotional offers, discounts, sales",
	entities.IntentBrandAwareness:     "announcements, introductions, general promotion",
	entities.IntentEngagement:         "interactive content, questions, polls",
	entities.IntentEventCelebration:   "festivals, holidays, special occasions",
	entities.IntentProductLaunch:      "new products, services, features",
	entities.IntentEducational:        "how-to, tips, informative content",
	entities.IntentAmbiguousRequest:   "unclear intent",
}

// The category list is generated from the enum so the prompt can never
// drift from what ParseIntent accepts.
func intentInstruction() string {
	var b strings.Builder
	b.WriteString("You are the Intent Analyst for a marketing agency. Classify user intent into ONE of these categories:\n")
	for _, intent := range entities.AllIntents() {
		b.WriteString("- ")
		b.WriteString(string(intent))
		b.WriteString(" (")
		b.WriteString(intentCategoryHints[intent])
		b.WriteString(")\n")
	}
	b.WriteString(`
Return ONLY valid JSON with:
{
  "intent_classification": "<CATEGORY>",
  "intent_summary": "<one-line human-readable summary>"
}`)
	return b.String()
}

// IntentClassifier is Stage 1. Misclassification cascades through the whole
// pipeline, so it runs at low temperature; unparseable output fails closed
// to AMBIGUOUS_REQUEST rather than aborting the run.
type IntentClassifier struct {
	Gateway     ports.CompletionGateway
	Model       string
	Temperature float64
	Logger      *slog.Logger
}

func (c IntentClassifier) Classify(ctx context.Context, rawInput string) (entities.IntentResult, error) {
	logger := application.ResolveLogger(c.Logger)

	if strings.TrimSpace(rawInput) == "" {
		return entities.IntentResult{
			Classification: entities.IntentAmbiguousRequest,
			Summary:        "empty request",
		}, nil
	}

	completion, err := c.Gateway.Complete(ctx, ports.CompletionInput{
		Model:       c.Model,
		Instruction: intentInstruction(),
		Payload:     rawInput,
		Temperature: c.temperature(),
	})
	if err != nil {
		return entities.IntentResult{}, upstreamFailure("intent classifier", err)
	}

	var result entities.IntentResult
	if err := decodeStrict(completion, &result); err != nil {
		logger.Warn("intent completion unparseable, defaulting to ambiguous",
			"event", "intent_parse_fallback",
			"module", "campaign-studio/orchestrator-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.IntentResult{
			Classification: entities.IntentAmbiguousRequest,
			Summary:        truncateSummary(completion, 100),
		}, nil
	}

	// The enum is closed; anything the model improvised collapses to
	// AMBIGUOUS_REQUEST.
	result.Classification = entities.ParseIntent(string(result.Classification))
	if strings.TrimSpace(result.Summary) == "" {
		result.Summary = truncateSummary(rawInput, 100)
	}

	logger.Info("intent classified",
		"event", "intent_classified",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"classification", string(result.Classification),
	)
	return result, nil
}

func (c IntentClassifier) temperature() float64 {
	if c.Temperature > 0 {
		return c.Temperature
	}
	return 0.3
}
