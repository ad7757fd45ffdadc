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

// ProductRequest are the structured fields of a product-shot generation.
// Only the description is mandatory; the rest refines the prompt.
type ProductRequest struct {
	ProductDescription string `json:"productDescription"`
	BackgroundSurface  string `json:"backgroundSurface"`
	SpecificFeature    string `json:"specificFeature"`
	MainDetail         string `json:"mainDetail"`
	LightingSetup      string `json:"lightingSetup"`
	CameraAngle        string `json:"cameraAngle"`
	AspectRatio        string `json:"aspectRatio"`
}

// ProductAdapter renders studio product photographs via Gemini.
type ProductAdapter struct {
	client  *gemini.Client
	store   *storage.FileStore
	janitor *retention.Janitor
	logger  infra.Logger
}

// NewProductAdapter wires the adapter with its collaborators.
func NewProductAdapter(client *gemini.Client, store *storage.FileStore, janitor *retention.Janitor, logger infra.Logger) *ProductAdapter {
	return &ProductAdapter{client: client, store: store, janitor: janitor, logger: logger}
}

// Generate runs one product-shot request. Demo mode echoes the prompt that
// would have been sent alongside a placeholder asset.
func (a *ProductAdapter) Generate(ctx context.Context, locale string, req ProductRequest) (*Result, error) {
	if !a.client.HasCredentials() {
		a.logger.Info().Msg("generate: no Gemini API key configured, using product demo mode")
		return &Result{
			URL:    "/placeholder.svg",
			Prompt: BuildProductPrompt(promptInput(req)),
			Demo:   true,
		}, nil
	}

	if strings.TrimSpace(req.ProductDescription) == "" {
		return nil, NewValidationError("Product description is required")
	}

	prompt := BuildProductPrompt(promptInput(req))
	requestID := uuid.NewString()
	a.logger.Debug().Str("request_id", requestID).Str("prompt", prompt).Msg("generate: product prompt built")

	data, err := a.client.GenerateImage(ctx, requestID, []gemini.Part{{Text: prompt}})
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: product image failed")
		return nil, MapUpstreamError(err)
	}

	filename, err := a.store.SaveImage(ctx, storage.AssetPrefixProduct, data)
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: failed to persist asset")
		return nil, MapUpstreamError(err)
	}
	a.janitor.Kick()

	return &Result{URL: "/" + filename, Prompt: prompt, Demo: false}, nil
}

func promptInput(req ProductRequest) ProductPromptInput {
	return ProductPromptInput{
		ProductDescription: strings.TrimSpace(req.ProductDescription),
		BackgroundSurface:  strings.TrimSpace(req.BackgroundSurface),
		SpecificFeature:    strings.TrimSpace(req.SpecificFeature),
		MainDetail:         strings.TrimSpace(req.MainDetail),
		LightingSetup:      strings.TrimSpace(req.LightingSetup),
		CameraAngle:        strings.TrimSpace(req.CameraAngle),
		AspectRatio:        strings.TrimSpace(req.AspectRatio),
	}
}
