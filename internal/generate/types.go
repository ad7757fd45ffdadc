// Package generate holds the provider adapters and the normalization
// contract they share: every upstream's heterogeneous success and error
// shapes are mapped into one uniform result and a four-kind error taxonomy.
package generate

import (
	"errors"
	"fmt"
	"net/http"
)

// Result is the normalized outcome of one generation request, regardless of
// which upstream produced it. URL is either a relative path to a saved asset,
// a data URI, or an absolute third-party URL.
type Result struct {
	URL      string            `json:"url"`
	Prompt   string            `json:"prompt"`
	Demo     bool              `json:"demo"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error codes shared by every adapter. These four kinds are exhaustive; no
// fifth kind exists. Caller-input validation failures reuse CodeInvalidRequest.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidAPIKey     = "INVALID_API_KEY"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Error is the normalized generation failure: a stable code, the HTTP status
// to propagate, and the most specific message available.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError flags missing or malformed caller input. It never
// reaches upstream.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Status: http.StatusBadRequest, Message: message}
}

// httpStatusCoder is implemented by the provider API error types.
type httpStatusCoder interface {
	HTTPStatus() int
}

// MapUpstreamError converts any provider failure into the taxonomy.
// HTTP 400, 401 and 429 map to their dedicated codes; everything else, from
// network failures to a response without an image, is an internal error
// carrying the original message.
func MapUpstreamError(err error) *Error {
	var coder httpStatusCoder
	if errors.As(err, &coder) {
		switch coder.HTTPStatus() {
		case http.StatusBadRequest:
			return &Error{
				Code:    CodeInvalidRequest,
				Status:  http.StatusBadRequest,
				Message: "Bad Request - Invalid request to upstream API",
			}
		case http.StatusUnauthorized:
			return &Error{
				Code:    CodeInvalidAPIKey,
				Status:  http.StatusUnauthorized,
				Message: "Unauthorized - Invalid API key",
			}
		case http.StatusTooManyRequests:
			return &Error{
				Code:    CodeRateLimitExceeded,
				Status:  http.StatusTooManyRequests,
				Message: "Rate Limit Exceeded - Please try again later",
			}
		}
	}
	return &Error{Code: CodeInternalError, Status: http.StatusInternalServerError, Message: err.Error()}
}
