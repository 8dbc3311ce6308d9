package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

const synthesisInstruction = `You are the Master Synthesis Agent - the Creative Director.

Your mandate:
1. Review all strategic and creative drafts
2. Select the STRONGEST headline, CLEAREST body copy, most IMPACTFUL CTA
3. Refine and polish into a single "Master" version
4. Engineer a HIGHLY DETAILED image prompt for the image model
5. Build complete layout instructions including contact strip if enabled

Return ONLY valid JSON with this EXACT structure:
{
  "campaignTitle": "...",
  "strategicSummary": {
    "intent": "...",
    "goal": "...",
    "targetAudience": "..."
  },
  "brandIdentity": {
    "personality": "...",
    "colorPalette": {
      "primary": "#...",
      "secondary": "#...",
      "accent": "#..."
    },
    "typography": "..."
  },
  "masterCopywriting": {
    "headline": "...",
    "body": "...",
    "callToAction": "..."
  },
  "distributionAssets": {
    "facebook_instagram_post": {
      "copy": "...",
      "format_suggestion": "..."
    },
    "whatsapp_status": {
      "copy": "...",
      "format_suggestion": "..."
    }
  },
  "masterVisuals": {
    "creative_direction": "...",
    "master_image_prompt": "Ultra-realistic... (DETAILED prompt)",
    "layoutInstructions": {
      "contact_strip": {
        "enabled": true/false,
        "background_color": "#...",
        "text_color": "#...",
        "content_placeholders": ["...", "..."],
        "font_style": "..."
      },
      "logo_placement": "...",
      "main_text_placement": {
        "headline_position": "...",
        "body_position": "..."
      }
    }
  }
}`

// MasterSynthesizer is Stage 4: it condenses the brief and the three draft
// pillars into the final blueprint. Unlike Stage 1 there is no fallback here;
// an unparseable completion is fatal and surfaces with the raw model output
// attached for diagnosis.
type MasterSynthesizer struct {
	Gateway     ports.CompletionGateway
	Model       string
	Temperature float64
	Logger      *slog.Logger
}

func (s MasterSynthesizer) Synthesize(
	ctx context.Context,
	brief entities.StrategicBrief,
	drafts entities.ContentDraftBundle,
	brand entities.BrandSettings,
) (entities.MasterBlueprint, error) {
	logger := application.ResolveLogger(s.Logger)

	briefJSON, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return entities.MasterBlueprint{}, err
	}
	draftsJSON, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return entities.MasterBlueprint{}, err
	}
	brandJSON, err := json.MarshalIndent(brand, "", "  ")
	if err != nil {
		return entities.MasterBlueprint{}, err
	}

	payload := fmt.Sprintf(
		"STRATEGIC BRIEF:\n%s\n\nCREATIVE DRAFTS:\n%s\n\nUSER SETTINGS:\n%s\n\nCreate the complete campaign blueprint. Make the image prompt EXTREMELY detailed and cinematic.",
		briefJSON, draftsJSON, brandJSON,
	)
	if !brand.ContactStripEnabled {
		payload += "\nThe contact strip is disabled: set contact_strip.enabled to false and leave its other fields empty."
	}

	completion, err := s.Gateway.Complete(ctx, ports.CompletionInput{
		Model:       s.Model,
		Instruction: synthesisInstruction,
		Payload:     payload,
		Temperature: s.temperature(),
	})
	if err != nil {
		return entities.MasterBlueprint{}, upstreamFailure("master synthesis", err)
	}

	var blueprint entities.MasterBlueprint
	if err := decodeStrict(completion, &blueprint); err != nil {
		logger.Error("synthesis output unparseable",
			"event", "synthesis_parse_failed",
			"module", "campaign-studio/orchestrator-service",
			"layer", "application",
			"error", err,
		)
		return entities.MasterBlueprint{}, &domainerrors.SynthesisParseError{
			RawCompletion: completion,
			Cause:         err,
		}
	}
	if !blueprint.Validate() {
		return entities.MasterBlueprint{}, &domainerrors.SynthesisParseError{
			RawCompletion: completion,
			Cause:         fmt.Errorf("blueprint missing campaign title or image prompt"),
		}
	}

	// The model is told to honor the setting, but the setting wins regardless
	// of what came back.
	if !brand.ContactStripEnabled {
		blueprint.MasterVisuals.LayoutInstructions.ContactStrip = entities.ContactStrip{Enabled: false}
	}

	logger.Info("master blueprint created",
		"event", "master_blueprint_created",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"campaign_title", blueprint.CampaignTitle,
	)
	return blueprint, nil
}

func (s MasterSynthesizer) temperature() float64 {
	if s.Temperature > 0 {
		return s.Temperature
	}
	return 0.7
}
