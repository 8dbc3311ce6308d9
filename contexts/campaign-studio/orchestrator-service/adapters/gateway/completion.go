package gateway

import (
	"context"
	"fmt"

	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
	"agencyx/internal/platform/aigateway"
)

// CompletionAdapter satisfies the orchestrator's generation ports on top of
// the shared gateway client. Text completions pass errors through untouched
// so each stage can apply its own failure policy; image synthesis maps every
// failure into the image error class.
type CompletionAdapter struct {
	Client     *aigateway.Client
	ImageModel string
}

var _ ports.CompletionGateway = CompletionAdapter{}
var _ ports.ImageSynthesizer = CompletionAdapter{}

func (a CompletionAdapter) Complete(ctx context.Context, input ports.CompletionInput) (string, error) {
	return a.Client.Complete(ctx, aigateway.CompletionRequest{
		Model:       input.Model,
		Instruction: input.Instruction,
		UserContent: input.Payload,
		Temperature: input.Temperature,
	})
}

func (a CompletionAdapter) Synthesize(ctx context.Context, prompt string, referenceImageURL string) (string, error) {
	imageURL, err := a.Client.GenerateImage(ctx, aigateway.ImageRequest{
		Model:             a.ImageModel,
		Prompt:            prompt,
		ReferenceImageURL: referenceImageURL,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainerrors.ErrImageSynthesis, err)
	}
	return imageURL, nil
}
