package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProductPromptFullForm(t *testing.T) {
	prompt := BuildProductPrompt(ProductPromptInput{
		ProductDescription: "a ceramic coffee mug",
		BackgroundSurface:  "a rustic wooden table",
		SpecificFeature:    "the glazed finish",
		MainDetail:         "the handle",
		LightingSetup:      "three-point softbox setup",
		CameraAngle:        "a 45-degree angle",
		AspectRatio:        "16:9 aspect ratio",
	})

	assert.Equal(t,
		"A high-resolution, studio-lit product photograph of a ceramic coffee mug, "+
			"presented on a rustic wooden table. The lighting is three-point softbox setup "+
			"designed to create soft, diffused highlights and eliminate harsh shadows. "+
			"The camera angle is a 45-degree angle to showcase the glazed finish. "+
			"Ultra-realistic, with sharp focus on the handle. 16:9 aspect ratio",
		prompt)
}

func TestBuildProductPromptMinimalForm(t *testing.T) {
	prompt := BuildProductPrompt(ProductPromptInput{ProductDescription: "a leather wallet"})

	assert.Contains(t, prompt, "product photograph of a leather wallet")
	assert.Contains(t, prompt, "The lighting is professional studio lighting for optimal lighting")
	assert.Contains(t, prompt, "Square image")
	assert.NotContains(t, prompt, "presented on")
	assert.NotContains(t, prompt, "camera angle")
}

func TestBuildProductPromptUnknownLighting(t *testing.T) {
	prompt := BuildProductPrompt(ProductPromptInput{
		ProductDescription: "a candle",
		LightingSetup:      "candlelight ambience",
	})
	assert.Contains(t, prompt, "The lighting is candlelight ambience for optimal lighting")
}

func TestBuildFashionPrompt(t *testing.T) {
	prompt := BuildFashionPrompt("dress", "female model", "studio editorial shot", "golden-hour")

	assert.Contains(t, prompt, "Take the dress from the first image")
	assert.Contains(t, prompt, "place it with/on the female model from the second image")
	assert.Contains(t, prompt, "The final image should be a studio editorial shot.")
	assert.Contains(t, prompt, "Use Golden hour lighting for professional photography quality.")
}

func TestLightingLabelFallbackTitleCases(t *testing.T) {
	assert.Equal(t, "Ring light setup", lightingLabel("ring-light"))
	assert.Equal(t, "Neon Underground", lightingLabel("neon-underground"))
}
