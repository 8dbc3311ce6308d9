package entities

import "strings"

// IntentClassification is the closed set of marketing intents the pipeline
// recognizes. Stage 1 must resolve every input to exactly one of these.
type IntentClassification string

const (
	IntentDirectResponseSale IntentClassification = "DIRECT_RESPONSE_SALE"
	IntentBrandAwareness     IntentClassification = "BRAND_AWARENESS"
	IntentEngagement         IntentClassification = "ENGAGEMENT"
	IntentEventCelebration   IntentClassification = "EVENT_CELEBRATION"
	IntentProductLaunch      IntentClassification = "PRODUCT_LAUNCH"
	IntentEducational        IntentClassification = "EDUCATIONAL"
	IntentAmbiguousRequest   IntentClassification = "AMBIGUOUS_REQUEST"
)

// AllIntents lists every valid classification, in prompt order.
func AllIntents() []IntentClassification {
	return []IntentClassification{
		IntentDirectResponseSale,
		IntentBrandAwareness,
		IntentEngagement,
		IntentEventCelebration,
		IntentProductLaunch,
		IntentEducational,
		IntentAmbiguousRequest,
	}
}

func (c IntentClassification) Valid() bool {
	switch c {
	case IntentDirectResponseSale, IntentBrandAwareness, IntentEngagement,
		IntentEventCelebration, IntentProductLaunch, IntentEducational,
		IntentAmbiguousRequest:
		return true
	default:
		return false
	}
}

// ParseIntent maps raw model output onto the enum, tolerating case and
// whitespace drift. Anything unrecognized resolves to AMBIGUOUS_REQUEST.
func ParseIntent(raw string) IntentClassification {
	candidate := IntentClassification(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate
	}
	return IntentAmbiguousRequest
}

// IntentResult is Stage 1 output and Stage 2 input.
type IntentResult struct {
	Classification IntentClassification `json:"intent_classification"`
	Summary        string               `json:"intent_summary"`
}
