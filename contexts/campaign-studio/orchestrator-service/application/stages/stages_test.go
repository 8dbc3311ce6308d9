package stages

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

type fakeGateway struct {
	mu    sync.Mutex
	calls int
	fn    func(input ports.CompletionInput) (string, error)
}

func (g *fakeGateway) Complete(_ context.Context, input ports.CompletionInput) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.fn(input)
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func TestIntentClassifierEmptyInputSkipsGateway(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		t.Fatal("gateway must not be called for empty input")
		return "", nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	result, err := classifier.Classify(context.Background(), "   ")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Classification != entities.IntentAmbiguousRequest {
		t.Fatalf("expected AMBIGUOUS_REQUEST, got %s", result.Classification)
	}
	if gateway.callCount() != 0 {
		t.Fatalf("expected zero gateway calls, got %d", gateway.callCount())
	}
}

func TestIntentInstructionListsEveryCategory(t *testing.T) {
	var captured string
	gateway := &fakeGateway{fn: func(input ports.CompletionInput) (string, error) {
		captured = input.Instruction
		return `{"intent_classification": "ENGAGEMENT", "intent_summary": "poll idea"}`, nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	if _, err := classifier.Classify(context.Background(), "weekly quiz for followers"); err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	for _, intent := range entities.AllIntents() {
		if !strings.Contains(captured, string(intent)) {
			t.Fatalf("instruction is missing category %s", intent)
		}
	}
}

func TestIntentClassifierFallsBackOnUnparseableOutput(t *testing.T) {
	raw := strings.Repeat("The user clearly wants a festive discount campaign. ", 5)
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return raw, nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	result, err := classifier.Classify(context.Background(), "diwali sale")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Classification != entities.IntentAmbiguousRequest {
		t.Fatalf("expected AMBIGUOUS_REQUEST, got %s", result.Classification)
	}
	if len(result.Summary) > 100 {
		t.Fatalf("expected summary capped at 100 chars, got %d", len(result.Summary))
	}
	if !strings.HasPrefix(strings.TrimSpace(raw), result.Summary) {
		t.Fatalf("expected summary to be a prefix of the raw completion, got %q", result.Summary)
	}
}

func TestIntentFallbackSummaryStaysValidUTF8(t *testing.T) {
	// 3-byte runes put the 100-byte cap in the middle of a character.
	raw := strings.Repeat("दिवाली की शुभकामनाएं ", 12)
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return raw, nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	result, err := classifier.Classify(context.Background(), "festival greeting")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if !utf8.ValidString(result.Summary) {
		t.Fatalf("expected valid utf-8 summary, got %q", result.Summary)
	}
	if len(result.Summary) > 100 {
		t.Fatalf("expected summary capped at 100 bytes, got %d", len(result.Summary))
	}
	if !strings.HasPrefix(strings.TrimSpace(raw), result.Summary) {
		t.Fatalf("expected summary to be a prefix of the raw completion, got %q", result.Summary)
	}
}

func TestIntentClassifierCollapsesUnknownCategory(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return `{"intent_classification": "VIRAL_GROWTH_HACK", "intent_summary": "something made up"}`, nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	result, err := classifier.Classify(context.Background(), "make me famous")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Classification != entities.IntentAmbiguousRequest {
		t.Fatalf("expected improvised category to collapse to AMBIGUOUS_REQUEST, got %s", result.Classification)
	}
}

func TestIntentClassifierNormalizesCase(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return `{"intent_classification": " direct_response_sale ", "intent_summary": "weekend discount push"}`, nil
	}}
	classifier := IntentClassifier{Gateway: gateway}

	result, err := classifier.Classify(context.Background(), "20% off this weekend")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Classification != entities.IntentDirectResponseSale {
		t.Fatalf("expected DIRECT_RESPONSE_SALE, got %s", result.Classification)
	}
}

func TestIntentClassifierUpstreamFailure(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return "", errors.New("connection refused")
	}}
	classifier := IntentClassifier{Gateway: gateway}

	_, err := classifier.Classify(context.Background(), "spring launch")
	if !errors.Is(err, domainerrors.ErrUpstreamService) {
		t.Fatalf("expected upstream service error, got %v", err)
	}
}

func TestStrategyBuilderMalformedOutputIsFatal(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return "here is your strategy: focus on families", nil
	}}
	builder := StrategyBuilder{Gateway: gateway}

	_, err := builder.Build(context.Background(), "diwali sale",
		entities.IntentResult{Classification: entities.IntentEventCelebration},
		entities.BrandSettings{})
	if !errors.Is(err, domainerrors.ErrMalformedStageOutput) {
		t.Fatalf("expected malformed stage output error, got %v", err)
	}
}

func TestStrategyBuilderStripsMarkdownFence(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return "```json\n{\"intent\": \"EVENT_CELEBRATION\", \"strategic_brief\": {\"campaign_goal\": \"festive sales\", \"target_audience\": \"families\", \"deconstructed_elements\": {\"primary_subject\": \"sweets\"}, \"suggested_platforms\": [\"instagram\"]}}\n```", nil
	}}
	builder := StrategyBuilder{Gateway: gateway}

	brief, err := builder.Build(context.Background(), "diwali sweets sale",
		entities.IntentResult{Classification: entities.IntentEventCelebration},
		entities.BrandSettings{Name: "Mithai House"})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if brief.Intent != entities.IntentEventCelebration {
		t.Fatalf("expected EVENT_CELEBRATION, got %s", brief.Intent)
	}
	if brief.Brief.CampaignGoal != "festive sales" {
		t.Fatalf("unexpected campaign goal %q", brief.Brief.CampaignGoal)
	}
}

func TestStrategyBuilderRepairsInvalidIntent(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return `{"intent": "SOMETHING_ELSE", "strategic_brief": {"campaign_goal": "g", "target_audience": "a", "deconstructed_elements": {}, "suggested_platforms": []}}`, nil
	}}
	builder := StrategyBuilder{Gateway: gateway}

	brief, err := builder.Build(context.Background(), "input",
		entities.IntentResult{Classification: entities.IntentProductLaunch},
		entities.BrandSettings{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if brief.Intent != entities.IntentProductLaunch {
		t.Fatalf("expected brief intent repaired to PRODUCT_LAUNCH, got %s", brief.Intent)
	}
}

func plannerResponses(input ports.CompletionInput) (string, error) {
	switch {
	case strings.Contains(input.Instruction, "Copywriting"):
		return `{"headline_options": ["a", "b", "c"], "body_paragraph_options": ["p1", "p2"], "cta_variations": ["go", "now", "buy"]}`, nil
	case strings.Contains(input.Instruction, "Social Media"):
		return `{"instagram_caption": "ig", "facebook_post": "fb", "hashtag_strategy": {"core": ["#x"], "niche": [], "local": []}, "story_idea": "story"}`, nil
	case strings.Contains(input.Instruction, "Visuals"):
		return `{"mood": "warm", "core_concept": "scene", "key_visual_elements": ["light"], "compositional_notes": "wide"}`, nil
	default:
		return "", errors.New("unexpected instruction")
	}
}

func TestContentPlannersProduceFullBundle(t *testing.T) {
	gateway := &fakeGateway{fn: plannerResponses}
	planners := ContentPlanners{Gateway: gateway}

	bundle, err := planners.Draft(context.Background(), entities.StrategicBrief{
		Intent: entities.IntentBrandAwareness,
	})
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}
	if len(bundle.Copy.HeadlineOptions) != 3 {
		t.Fatalf("expected 3 headlines, got %d", len(bundle.Copy.HeadlineOptions))
	}
	if bundle.Social.InstagramCaption != "ig" {
		t.Fatalf("unexpected instagram caption %q", bundle.Social.InstagramCaption)
	}
	if bundle.Visuals.Mood != "warm" {
		t.Fatalf("unexpected mood %q", bundle.Visuals.Mood)
	}
	if gateway.callCount() != 3 {
		t.Fatalf("expected 3 planner calls, got %d", gateway.callCount())
	}
}

func TestContentPlannersSingleFailureFailsBundle(t *testing.T) {
	gateway := &fakeGateway{fn: func(input ports.CompletionInput) (string, error) {
		if strings.Contains(input.Instruction, "Social Media") {
			return "not json at all", nil
		}
		return plannerResponses(input)
	}}
	planners := ContentPlanners{Gateway: gateway}

	_, err := planners.Draft(context.Background(), entities.StrategicBrief{})
	if !errors.Is(err, domainerrors.ErrMalformedStageOutput) {
		t.Fatalf("expected malformed stage output error, got %v", err)
	}
}

func TestContentPlannersUpstreamFailureFailsBundle(t *testing.T) {
	gateway := &fakeGateway{fn: func(input ports.CompletionInput) (string, error) {
		if strings.Contains(input.Instruction, "Visuals") {
			return "", errors.New("429 rate limited")
		}
		return plannerResponses(input)
	}}
	planners := ContentPlanners{Gateway: gateway}

	_, err := planners.Draft(context.Background(), entities.StrategicBrief{})
	if !errors.Is(err, domainerrors.ErrUpstreamService) {
		t.Fatalf("expected upstream service error, got %v", err)
	}
}

const validBlueprintJSON = `{
  "campaignTitle": "Festival Push",
  "strategicSummary": {"intent": "EVENT_CELEBRATION", "goal": "g", "targetAudience": "a"},
  "brandIdentity": {"personality": "warm", "colorPalette": {"primary": "#D97706", "secondary": "#1F2937", "accent": "#F59E0B"}, "typography": "serif"},
  "masterCopywriting": {"headline": "h", "body": "b", "callToAction": "c"},
  "distributionAssets": {
    "facebook_instagram_post": {"copy": "fb", "format_suggestion": "1:1"},
    "whatsapp_status": {"copy": "wa", "format_suggestion": "9:16"}
  },
  "masterVisuals": {
    "creative_direction": "festive",
    "master_image_prompt": "Ultra-realistic festival storefront at dusk",
    "layoutInstructions": {
      "contact_strip": {"enabled": true, "background_color": "#000000", "text_color": "#ffffff", "content_placeholders": ["phone"], "font_style": "bold"},
      "logo_placement": "top-left",
      "main_text_placement": {"headline_position": "top", "body_position": "bottom"}
    }
  }
}`

func TestMasterSynthesizerParseErrorCarriesRawCompletion(t *testing.T) {
	raw := "I could not produce JSON, sorry."
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return raw, nil
	}}
	synthesizer := MasterSynthesizer{Gateway: gateway}

	_, err := synthesizer.Synthesize(context.Background(), entities.StrategicBrief{}, entities.ContentDraftBundle{}, entities.BrandSettings{})
	var parseErr *domainerrors.SynthesisParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected synthesis parse error, got %v", err)
	}
	if parseErr.RawCompletion != raw {
		t.Fatalf("expected raw completion preserved, got %q", parseErr.RawCompletion)
	}
	if !errors.Is(err, domainerrors.ErrMalformedStageOutput) {
		t.Fatalf("expected parse error to unwrap to malformed stage output")
	}
}

func TestMasterSynthesizerRejectsEmptyImagePrompt(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return strings.Replace(validBlueprintJSON, "Ultra-realistic festival storefront at dusk", "", 1), nil
	}}
	synthesizer := MasterSynthesizer{Gateway: gateway}

	_, err := synthesizer.Synthesize(context.Background(), entities.StrategicBrief{}, entities.ContentDraftBundle{}, entities.BrandSettings{})
	var parseErr *domainerrors.SynthesisParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected synthesis parse error for empty image prompt, got %v", err)
	}
}

func TestMasterSynthesizerForcesContactStripOff(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return validBlueprintJSON, nil
	}}
	synthesizer := MasterSynthesizer{Gateway: gateway}

	blueprint, err := synthesizer.Synthesize(context.Background(), entities.StrategicBrief{}, entities.ContentDraftBundle{},
		entities.BrandSettings{ContactStripEnabled: false})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	strip := blueprint.MasterVisuals.LayoutInstructions.ContactStrip
	if strip.Enabled {
		t.Fatal("expected contact strip disabled")
	}
	if strip.BackgroundColor != "" || len(strip.ContentPlaceholders) != 0 {
		t.Fatal("expected disabled contact strip content cleared")
	}
}

func TestMasterSynthesizerKeepsContactStripWhenEnabled(t *testing.T) {
	gateway := &fakeGateway{fn: func(ports.CompletionInput) (string, error) {
		return validBlueprintJSON, nil
	}}
	synthesizer := MasterSynthesizer{Gateway: gateway}

	blueprint, err := synthesizer.Synthesize(context.Background(), entities.StrategicBrief{}, entities.ContentDraftBundle{},
		entities.BrandSettings{ContactStripEnabled: true})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	strip := blueprint.MasterVisuals.LayoutInstructions.ContactStrip
	if !strip.Enabled {
		t.Fatal("expected contact strip enabled")
	}
	if strip.BackgroundColor != "#000000" {
		t.Fatalf("expected contact strip content preserved, got %q", strip.BackgroundColor)
	}
}
