package generate

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"fotostudio/internal/infra"
	"fotostudio/internal/providers/gemini"
)

// ImageInput is one uploaded reference image. TooLarge marks an upload that
// exceeded the handler's size cap, so validation can name the real problem
// instead of reporting the image as missing.
type ImageInput struct {
	Data     []byte
	MIME     string
	TooLarge bool
}

func (in ImageInput) mimeType() string {
	if in.MIME == "" {
		return "image/png"
	}
	return in.MIME
}

// FashionRequest carries the two reference images plus the try-on options.
type FashionRequest struct {
	ProductImage *ImageInput
	PersonImage  *ImageInput
	Description  string
	Lighting     string
	ModelType    string
	ClothingType string
}

// FashionAdapter combines a clothing image with a model image via the Gemini
// multimodal endpoint. The generated image is returned inline as a data URI
// instead of being persisted, so it never enters the retention directory.
type FashionAdapter struct {
	client *gemini.Client
	logger infra.Logger
}

// NewFashionAdapter wires the adapter with its collaborators.
func NewFashionAdapter(client *gemini.Client, logger infra.Logger) *FashionAdapter {
	return &FashionAdapter{client: client, logger: logger}
}

// Generate runs one try-on request. Credential check precedes validation so
// demo mode answers even a malformed form.
func (a *FashionAdapter) Generate(ctx context.Context, locale string, req FashionRequest) (*Result, error) {
	if !a.client.HasCredentials() {
		a.logger.Info().Msg("generate: no Gemini API key configured, using fashion demo mode")
		return &Result{URL: "/demo-fashion.jpg", Prompt: demoPrompt(locale), Demo: true}, nil
	}

	if req.ProductImage == nil || req.PersonImage == nil {
		return nil, NewValidationError("Both product and person images are required")
	}
	if req.ProductImage.TooLarge || req.PersonImage.TooLarge {
		return nil, NewValidationError("Image files must be 10MB or smaller")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, NewValidationError("Description is required")
	}
	if req.Lighting == "" || req.ModelType == "" || req.ClothingType == "" {
		return nil, NewValidationError("Lighting, model type, and clothing type are required")
	}

	prompt := BuildFashionPrompt(req.ClothingType, req.ModelType, req.Description, req.Lighting)
	requestID := uuid.NewString()
	a.logger.Debug().Str("request_id", requestID).Str("prompt", prompt).Msg("generate: fashion prompt built")

	parts := []gemini.Part{
		{InlineData: &gemini.InlineData{MIMEType: req.ProductImage.mimeType(), Data: req.ProductImage.Data}},
		{InlineData: &gemini.InlineData{MIMEType: req.PersonImage.mimeType(), Data: req.PersonImage.Data}},
		{Text: prompt},
	}
	data, err := a.client.GenerateImage(ctx, requestID, parts)
	if err != nil {
		a.logger.Error().Err(err).Str("request_id", requestID).Msg("generate: fashion try-on failed")
		return nil, MapUpstreamError(err)
	}

	return &Result{
		URL:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
		Prompt: prompt,
		Demo:   false,
		Metadata: map[string]string{
			"lighting":     lightingLabel(req.Lighting),
			"modelType":    req.ModelType,
			"clothingType": req.ClothingType,
			"description":  strings.TrimSpace(req.Description),
		},
	}, nil
}
