package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"fotostudio/internal/generate"
	"fotostudio/internal/middleware"
)

// maxUploadBytes caps each uploaded reference image at 10MB.
const maxUploadBytes = 10 << 20

type generateImageRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImage handles the plain text-to-image endpoint backed by Gemini.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	// Body decoding is best-effort: with no credential configured the
	// adapter answers in demo mode regardless of the payload.
	_ = json.NewDecoder(r.Body).Decode(&req)

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.TextImage.Generate(r.Context(), locale, req.Prompt)
	if err != nil {
		a.generateError(w, err)
		return
	}
	a.json(w, http.StatusOK, result)
}

// GenerateProductImage handles the structured product-shot endpoint.
func (a *App) GenerateProductImage(w http.ResponseWriter, r *http.Request) {
	var req generate.ProductRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.Product.Generate(r.Context(), locale, req)
	if err != nil {
		a.generateError(w, err)
		return
	}
	a.json(w, http.StatusOK, result)
}

// GenerateDalle handles the DALL·E text-to-image endpoint.
func (a *App) GenerateDalle(w http.ResponseWriter, r *http.Request) {
	var req generate.DalleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.Dalle.Generate(r.Context(), locale, req)
	if err != nil {
		a.generateError(w, err)
		return
	}
	a.json(w, http.StatusOK, result)
}

// FashionTryOn handles the multipart try-on endpoint: two reference images
// plus the description and styling enumerations.
func (a *App) FashionTryOn(w http.ResponseWriter, r *http.Request) {
	// Parsing is best-effort for the same reason as above: the adapter's
	// credential check must win even over a malformed form.
	req := parseFashionForm(r)

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.Fashion.Generate(r.Context(), locale, req)
	if err != nil {
		a.generateError(w, err)
		return
	}
	a.json(w, http.StatusOK, result)
}

func parseFashionForm(r *http.Request) generate.FashionRequest {
	var req generate.FashionRequest
	if err := r.ParseMultipartForm(2 * maxUploadBytes); err != nil {
		return req
	}
	req.ProductImage = formImage(r, "productImage")
	req.PersonImage = formImage(r, "personImage")
	req.Description = r.FormValue("description")
	req.Lighting = r.FormValue("lighting")
	req.ModelType = r.FormValue("modelType")
	req.ClothingType = r.FormValue("clothingType")
	return req
}

func formImage(r *http.Request, field string) *generate.ImageInput {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || len(data) == 0 {
		return nil
	}
	if len(data) > maxUploadBytes {
		return &generate.ImageInput{TooLarge: true}
	}
	return &generate.ImageInput{Data: data, MIME: imageMIME(header)}
}

func imageMIME(header *multipart.FileHeader) string {
	if header == nil {
		return ""
	}
	return header.Header.Get("Content-Type")
}
