package openscrobbler

import (
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response from the submission API.
//
// A 429 status is the service's short-lived throttle; callers typically
// retry after a pause without treating the attempt as spent.
type HTTPError struct {
	StatusCode int    // HTTP status code
	Status     string // HTTP status line, e.g. "429 Too Many Requests"
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("openscrobbler: http error: %s", e.Status)
}

// Is checks if the target error is an HTTPError with the same status code.
//
// This allows errors.Is() to work with *HTTPError types.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// RateLimited reports whether the error is the short-lived HTTP throttle,
// as opposed to the daily limit signaled inside a response body.
func (e *HTTPError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// DailyLimitError is the service's in-body encoding of an exhausted
// 24-hour scrobble quota. Unlike an HTTP 429 it does not clear within a
// run; callers should stop submitting.
type DailyLimitError struct {
	Code    int    // API error code (always errCodeRateLimit in practice)
	Message string // Error message from the service
}

// Error returns the error message.
func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("openscrobbler: error %d: %s", e.Code, e.Message)
}

const (
	// errCodeRateLimit is the API error code the service reuses for quota
	// conditions; the message text identifies the daily limit.
	errCodeRateLimit = 29

	// dailyLimitMarker appears in the message of a daily-limit error 29.
	dailyLimitMarker = "Rate Limit"
)
