package memory

import (
	"context"
	"strings"
	"sync"

	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

// CannedGateway is a deterministic stand-in for the generative gateway. It
// routes on the role prompt and returns well-formed stage output, so the
// whole pipeline can run without network access.
type CannedGateway struct {
	mu    sync.Mutex
	calls int
}

func NewCannedGateway() *CannedGateway {
	return &CannedGateway{}
}

var _ ports.CompletionGateway = (*CannedGateway)(nil)
var _ ports.ImageSynthesizer = (*CannedGateway)(nil)

// Calls reports how many completions were requested.
func (g *CannedGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *CannedGateway) Complete(_ context.Context, input ports.CompletionInput) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	switch {
	case strings.Contains(input.Instruction, "Intent Analyst"):
		return `{"intent_classification": "BRAND_AWARENESS", "intent_summary": "Promote the business to a local audience."}`, nil
	case strings.Contains(input.Instruction, "Strategy"):
		return `{
  "intent": "BRAND_AWARENESS",
  "strategic_brief": {
    "campaign_goal": "Grow local recognition",
    "target_audience": "Nearby customers aged 25-45",
    "deconstructed_elements": {
      "primary_subject": "The storefront and its signature product",
      "secondary_context": "A lively neighborhood setting",
      "call_to_action_details": "Visit this weekend",
      "brand_name": "Demo Brand",
      "brand_exclusions": ""
    },
    "suggested_platforms": ["instagram", "facebook"]
  }
}`, nil
	case strings.Contains(input.Instruction, "Copywriting Planner"):
		return `{
  "headline_options": ["Your Neighborhood Favorite", "Crafted Close to Home", "Meet Your New Go-To"],
  "body_paragraph_options": ["We pour care into every detail.", "Made fresh daily, right around the corner."],
  "cta_variations": ["Visit us today", "Stop by this weekend", "Come say hello"]
}`, nil
	case strings.Contains(input.Instruction, "Social Media Planner"):
		return `{
  "instagram_caption": "Something special is brewing in the neighborhood.",
  "facebook_post": "Come discover what your neighbors are talking about.",
  "hashtag_strategy": {
    "core": ["#shoplocal", "#smallbusiness"],
    "niche": ["#craftmade"],
    "local": ["#downtown"]
  },
  "story_idea": "Behind-the-scenes look at the morning prep."
}`, nil
	case strings.Contains(input.Instruction, "Visuals Planner"):
		return `{
  "mood": "Warm and inviting",
  "core_concept": "A golden-hour storefront scene",
  "key_visual_elements": ["storefront", "warm light", "happy customers"],
  "compositional_notes": "Wide shot with the sign centered"
}`, nil
	case strings.Contains(input.Instruction, "Master Synthesis"):
		return `{
  "campaignTitle": "Neighborhood Favorite Launch",
  "strategicSummary": {"intent": "BRAND_AWARENESS", "goal": "Grow local recognition", "targetAudience": "Nearby customers aged 25-45"},
  "brandIdentity": {"personality": "Warm and approachable", "colorPalette": {"primary": "#D97706", "secondary": "#1F2937", "accent": "#F59E0B"}, "typography": "Rounded sans-serif"},
  "masterCopywriting": {"headline": "Your Neighborhood Favorite", "body": "We pour care into every detail.", "callToAction": "Visit us today"},
  "distributionAssets": {
    "facebook_instagram_post": {"copy": "Come discover what your neighbors are talking about.", "format_suggestion": "Square 1:1"},
    "whatsapp_status": {"copy": "Something special is brewing.", "format_suggestion": "Vertical 9:16"}
  },
  "masterVisuals": {
    "creative_direction": "Golden-hour warmth",
    "master_image_prompt": "Ultra-realistic golden-hour photograph of a welcoming storefront, warm window light, shallow depth of field",
    "layoutInstructions": {
      "contact_strip": {"enabled": false},
      "logo_placement": "top-left",
      "main_text_placement": {"headline_position": "upper-third", "body_position": "lower-third"}
    }
  }
}`, nil
	default:
		return `{}`, nil
	}
}

func (g *CannedGateway) Synthesize(_ context.Context, _ string, _ string) (string, error) {
	return "https://cdn.example.test/generated/campaign.png", nil
}
