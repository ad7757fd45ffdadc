package generate

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fashionLightingLabels maps the lighting enumeration of the try-on form to
// the wording used inside the generation prompt.
var fashionLightingLabels = map[string]string{
	"three-point-softbox": "Three-point softbox setup",
	"natural-window":      "Natural window lighting",
	"studio-professional": "Professional studio lighting",
	"outdoor-natural":     "Outdoor natural lighting",
	"golden-hour":         "Golden hour lighting",
	"ring-light":          "Ring light setup",
	"dramatic-side":       "Dramatic side lighting",
}

// productLightingPurposes maps a lighting setup to the effect it is meant to
// achieve in the product shot.
var productLightingPurposes = map[string]string{
	"three-point softbox setup":       "designed to create soft, diffused highlights and eliminate harsh shadows",
	"dramatic side lighting":          "designed to create dramatic contrast and prominent texture",
	"ring light setup":                "designed to create even, shadowless illumination",
	"natural window lighting":         "designed to create soft, natural illumination",
	"overhead diffused lighting":      "designed to create even top-down illumination",
	"single key light with reflector": "designed to create controlled directional lighting with fill",
}

// lightingLabel resolves the display wording for a lighting value. Values
// outside the known enumeration are passed through title-cased so the prompt
// still reads naturally.
func lightingLabel(lighting string) string {
	if label, ok := fashionLightingLabels[lighting]; ok {
		return label
	}
	c := cases.Title(language.Und)
	return c.String(strings.ReplaceAll(lighting, "-", " "))
}

// ProductPromptInput are the structured fields of the product-shot form.
type ProductPromptInput struct {
	ProductDescription string
	BackgroundSurface  string
	SpecificFeature    string
	MainDetail         string
	LightingSetup      string
	CameraAngle        string
	AspectRatio        string
}

// BuildProductPrompt converts the structured form fields into the studio
// photography instruction the image model receives.
func BuildProductPrompt(in ProductPromptInput) string {
	lightingPurpose, ok := productLightingPurposes[in.LightingSetup]
	if !ok {
		lightingPurpose = "for optimal lighting"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A high-resolution, studio-lit product photograph of %s", in.ProductDescription)
	if in.BackgroundSurface != "" {
		fmt.Fprintf(&b, ", presented on %s", in.BackgroundSurface)
	}
	lighting := in.LightingSetup
	if lighting == "" {
		lighting = "professional studio lighting"
	}
	fmt.Fprintf(&b, ". The lighting is %s %s", lighting, lightingPurpose)
	if in.CameraAngle != "" {
		fmt.Fprintf(&b, ". The camera angle is %s", in.CameraAngle)
		if in.SpecificFeature != "" {
			fmt.Fprintf(&b, " to showcase %s", in.SpecificFeature)
		}
	}
	b.WriteString(". Ultra-realistic, with sharp focus")
	if in.MainDetail != "" {
		fmt.Fprintf(&b, " on %s", in.MainDetail)
	}
	if in.AspectRatio != "" {
		fmt.Fprintf(&b, ". %s", in.AspectRatio)
	} else {
		b.WriteString(". Square image")
	}
	return b.String()
}

// BuildFashionPrompt renders the try-on instruction combining the clothing
// item from the first image with the model from the second.
func BuildFashionPrompt(clothingType, modelType, description, lighting string) string {
	return fmt.Sprintf(
		"Create a new image by combining the elements from the provided images. "+
			"Take the %s from the first image and place it with/on the %s from the second image. "+
			"The final image should be a %s. Use %s for professional photography quality.",
		clothingType, modelType, strings.TrimSpace(description), lightingLabel(lighting),
	)
}
