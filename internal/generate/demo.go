package generate

import (
	"math/rand"
)

// demoImages are served when no provider credential is configured. Demo mode
// is a deliberate substitute result, not an error path, and it never calls
// upstream.
var demoImages = []string{
	"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=1024&h=1024&fit=crop",
	"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1024&h=1024&fit=crop",
	"https://images.unsplash.com/photo-1500375592092-40eb2168fd21?w=1024&h=1024&fit=crop",
	"https://images.unsplash.com/photo-1439066615861-d1af74d74000?w=1024&h=1024&fit=crop",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=1024&h=1024&fit=crop",
}

func randomDemoImage() string {
	return demoImages[rand.Intn(len(demoImages))]
}

// demoPrompt is the prompt echo used for demo results, in the caller's locale.
func demoPrompt(locale string) string {
	if locale == "id" {
		return "Mode demo - API key belum dikonfigurasi"
	}
	return "Demo mode - API key not configured"
}
