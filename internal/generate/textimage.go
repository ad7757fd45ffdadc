package generate

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fotostudio/internal/infra"
	"fotostudio/internal/providers/gemini"
	"fotostudio/internal/retention"
	"fotostudio/internal/storage"
)

// TextImageAdapter turns a free-text prompt into a saved Gemini image asset.
type TextImageAdapter struct {
	client  *gemini.Client
	store   *storage.FileStore
	janitor *retention.Janitor
	logger  infra.Logger
}

// NewTextImageAdapter wires the adapter with its collaborators.
func NewTextImageAdapter(client *gemini.Client, store *storage.FileStore, janitor *retention.Janitor, logger infra.Logger) *TextImageAdapter {
	return &TextImageAdapter{client: client, store: store, janitor: janitor, logger: logger}
}

// Generate runs one text-to-image request. The credential check comes first:
// without a key the adapter answers in demo mode before even validating the
// request, so the demo path works for malformed input too.
func (a *TextImageAdapter) Generate(ctx context.Context, locale, prompt string) (*Result, error) {
	if !a.client.HasCredentials() {
		a.logger.Info().Msg("generate: no Gemini API key configured, returning demo image")
		return &Result{URL: randomDemoImage(), Prompt: demoPrompt(locale), Demo: true}, nil
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, NewValidationError("Prompt is required")
	}

	requestID := uuid.NewString()
	data, err := a.client.GenerateImage(ctx, requestID, []gemini.Part{{Text: prompt}})
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: text-to-image failed")
		return nil, MapUpstreamError(err)
	}

	filename, err := a.store.SaveImage(ctx, storage.AssetPrefixGemini, data)
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: failed to persist asset")
		return nil, MapUpstreamError(err)
	}
	a.janitor.Kick()

	return &Result{URL: "/" + filename, Prompt: prompt, Demo: false}, nil
}
