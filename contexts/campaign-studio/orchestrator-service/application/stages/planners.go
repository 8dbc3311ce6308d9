package stages

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	application "agencyx/contexts/campaign-studio/orchestrator-service/application"
	"agencyx/contexts/campaign-studio/orchestrator-service/domain/entities"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

const copyPlannerInstruction = `You are the Copywriting Planner. Focus on voice, tone, and persuasion.
Create 3 headline options, 2 body paragraph options, and 3 CTA variations.
Return ONLY valid JSON with:
{
  "headline_options": ["...", "...", "..."],
  "body_paragraph_options": ["...", "..."],
  "cta_variations": ["...", "...", "..."]
}`

const socialPlannerInstruction = `You are the Social Media Planner. Focus on platform-specific formats and engagement.
Create Instagram caption, Facebook post, hashtag strategy, and story idea.
Return ONLY valid JSON with:
{
  "instagram_caption": "...",
  "facebook_post": "...",
  "hashtag_strategy": {
    "core": ["...", "..."],
    "niche": ["...", "..."],
    "local": ["..."]
  },
  "story_idea": "..."
}`

const visualsPlannerInstruction = `You are the Visuals Planner. Translate strategy into visual concepts.
Return ONLY valid JSON with:
{
  "mood": "...",
  "core_concept": "...",
  "key_visual_elements": ["...", "...", "..."],
  "compositional_notes": "..."
}`

// ContentPlanners is Stage 3: three independent drafting tasks fanned out
// against the same read-only brief. The join is fail-fast — a bundle missing
// a pillar would silently degrade Stage 4, so one failed branch fails the
// whole stage and cancels its siblings.
type ContentPlanners struct {
	Gateway     ports.CompletionGateway
	Model       string
	Temperature float64
	Logger      *slog.Logger
}

func (p ContentPlanners) Draft(ctx context.Context, brief entities.StrategicBrief) (entities.ContentDraftBundle, error) {
	logger := application.ResolveLogger(p.Logger)

	briefJSON, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return entities.ContentDraftBundle{}, err
	}
	payload := "Strategic Brief:\n" + string(briefJSON)

	var bundle entities.ContentDraftBundle
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return p.runPlanner(groupCtx, "copywriting planner", copyPlannerInstruction, payload, &bundle.Copy)
	})
	group.Go(func() error {
		return p.runPlanner(groupCtx, "social media planner", socialPlannerInstruction, payload, &bundle.Social)
	})
	group.Go(func() error {
		return p.runPlanner(groupCtx, "visuals planner", visualsPlannerInstruction, payload, &bundle.Visuals)
	})

	if err := group.Wait(); err != nil {
		return entities.ContentDraftBundle{}, err
	}

	logger.Info("content drafts generated",
		"event", "content_drafts_generated",
		"module", "campaign-studio/orchestrator-service",
		"layer", "application",
		"headline_options", len(bundle.Copy.HeadlineOptions),
	)
	return bundle, nil
}

// runPlanner writes into the branch's own bundle field; the three branches
// never share a field, so the join needs no locking.
func (p ContentPlanners) runPlanner(
	ctx context.Context,
	name string,
	instruction string,
	payload string,
	target any,
) error {
	completion, err := p.Gateway.Complete(ctx, ports.CompletionInput{
		Model:       p.Model,
		Instruction: instruction,
		Payload:     payload,
		Temperature: p.temperature(),
	})
	if err != nil {
		return upstreamFailure(name, err)
	}
	if err := decodeStrict(completion, target); err != nil {
		return malformedOutput(name, err)
	}
	return nil
}

func (p ContentPlanners) temperature() float64 {
	if p.Temperature > 0 {
		return p.Temperature
	}
	return 0.8
}
