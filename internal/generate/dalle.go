package generate

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fotostudio/internal/infra"
	"fotostudio/internal/providers/openai"
)

// DalleRequest are the inputs of a DALL·E text-to-image generation.
type DalleRequest struct {
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Style   string `json:"style"`
}

// DalleAdapter generates images through the OpenAI DALL·E API. Results are
// hosted by OpenAI, so the adapter returns the absolute URL and nothing is
// written to the output directory.
type DalleAdapter struct {
	client *openai.Client
	logger infra.Logger
}

// NewDalleAdapter wires the adapter with its collaborators.
func NewDalleAdapter(client *openai.Client, logger infra.Logger) *DalleAdapter {
	return &DalleAdapter{client: client, logger: logger}
}

// Generate runs one DALL·E request.
func (a *DalleAdapter) Generate(ctx context.Context, locale string, req DalleRequest) (*Result, error) {
	if !a.client.HasCredentials() {
		a.logger.Info().Msg("generate: no OpenAI API key configured, returning demo image")
		return &Result{URL: randomDemoImage(), Prompt: demoPrompt(locale), Demo: true}, nil
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, NewValidationError("Prompt is required")
	}

	requestID := uuid.NewString()
	url, err := a.client.GenerateImage(ctx, openai.ImageRequest{
		Prompt:    prompt,
		Size:      req.Size,
		Quality:   req.Quality,
		Style:     req.Style,
		RequestID: requestID,
	})
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: dalle generation failed")
		return nil, MapUpstreamError(err)
	}

	return &Result{URL: url, Prompt: prompt, Demo: false}, nil
}
