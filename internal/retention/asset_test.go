package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"gemini-image-*.png", "gemini-image-1700000000000.png", true},
		{"gemini-image-*.png", "gemini-image-.png", true},
		{"gemini-image-*.png", "gemini-image-1.jpg", false},
		{"gemini-image-*.png", "product-image-1.png", false},
		// Full-string match, not substring: a trailing extension after the
		// suffix must not slip through.
		{"gemini-image-*.png", "gemini-image-1.png.bak", false},
		{"gemini-image-*.png", "prefix-gemini-image-1.png", false},
		{"fashion-tryOn-*.png", "fashion-tryOn-42.png", true},
		{"fashion-tryOn-*.png", "fashion-tryon-42.png", false},
		{"*", "anything at all", true},
		{"*", "", true},
		{"", "", true},
		{"", "x", false},
		{"a*b*c", "abc", true},
		{"a*b*c", "a-middle-b-more-c", true},
		{"a*b*c", "a-middle-c", false},
		// '*' is the only special character; dots are literal.
		{"image.png", "imageXpng", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Match(tc.pattern, tc.name),
			"Match(%q, %q)", tc.pattern, tc.name)
	}
}

func TestMatchAny(t *testing.T) {
	assert.True(t, MatchAny(DefaultPatterns, "product-image-123.png"))
	assert.True(t, MatchAny(DefaultPatterns, "gemini-image-123.png"))
	assert.True(t, MatchAny(DefaultPatterns, "fashion-tryOn-123.png"))
	assert.False(t, MatchAny(DefaultPatterns, "other-file.png"))
	assert.False(t, MatchAny(DefaultPatterns, "screenshot.png"))
	assert.False(t, MatchAny(nil, "gemini-image-123.png"))
}
