package generate

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fotostudio/internal/providers/gemini"
	"fotostudio/internal/providers/openai"
)

func TestMapUpstreamErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"gemini 400", &gemini.APIError{StatusCode: 400, Message: "bad prompt"}, CodeInvalidRequest, 400},
		{"gemini 401", &gemini.APIError{StatusCode: 401, Message: "bad key"}, CodeInvalidAPIKey, 401},
		{"gemini 429", &gemini.APIError{StatusCode: 429, Message: "slow down"}, CodeRateLimitExceeded, 429},
		{"gemini 503", &gemini.APIError{StatusCode: 503, Message: "overloaded"}, CodeInternalError, 500},
		{"openai 401", &openai.APIError{StatusCode: 401, Message: "bad key"}, CodeInvalidAPIKey, 401},
		{"openai 429", &openai.APIError{StatusCode: 429, Message: "quota"}, CodeRateLimitExceeded, 429},
		{"wrapped api error", fmt.Errorf("call failed: %w", &gemini.APIError{StatusCode: 429}), CodeRateLimitExceeded, 429},
		{"network failure", errors.New("dial tcp: connection refused"), CodeInternalError, 500},
		{"no image returned", gemini.ErrNoImage, CodeInternalError, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapUpstreamError(tc.err)
			assert.Equal(t, tc.wantCode, mapped.Code)
			assert.Equal(t, tc.wantStatus, mapped.Status)
			assert.NotEmpty(t, mapped.Message)
		})
	}
}

// A missing image in an otherwise-successful response is surfaced as an
// internal error with the specific message, never downgraded to demo mode.
func TestMapUpstreamErrorKeepsNoImageMessage(t *testing.T) {
	mapped := MapUpstreamError(gemini.ErrNoImage)
	assert.Equal(t, CodeInternalError, mapped.Code)
	assert.Contains(t, mapped.Message, "no image data")
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Prompt is required")
	assert.Equal(t, CodeInvalidRequest, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "INVALID_REQUEST: Prompt is required", err.Error())
}
