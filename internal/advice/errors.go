package advice

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the advice package
var (
	// ErrEmptyQuestion is returned when a question is empty or whitespace-only.
	// No upstream call is made in this case.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrNotConfigured is returned when the upstream API key is absent from
	// the server configuration. This is a hard configuration failure, never
	// retried.
	ErrNotConfigured = errors.New("gemini API key is not configured")

	// ErrNoContent is returned when the upstream call succeeded but produced
	// no extractable answer text. Not retried: the status code did not mark
	// the failure transient.
	ErrNoContent = errors.New("no response generated from AI")
)

// UpstreamError carries the HTTP status code and message of a failed
// upstream call. Retry decisions switch on the Status field rather than on
// message content, so transport-level message changes cannot alter
// classification.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

// Transient reports whether the error is worth retrying: the upstream
// service was overloaded (503) or rate limited (429).
func (e *UpstreamError) Transient() bool {
	return e.Status == http.StatusServiceUnavailable || e.Status == http.StatusTooManyRequests
}

// NetworkError wraps a transport-level failure (DNS, connection reset) where
// no HTTP status was received. Classified retryable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling AI service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err should be retried under the backoff
// policy: an upstream 503/429, or a transport-level failure.
func IsTransient(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Transient()
	}
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsAuthFailure reports whether err is an upstream credential rejection
// (401 or 403). Retrying cannot change an invalid credential.
func IsAuthFailure(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status == http.StatusUnauthorized || ue.Status == http.StatusForbidden
	}
	return false
}

// IsMalformedRequest reports whether err is a client-side bad request
// (4xx other than 401/403/429). Retrying cannot change a malformed request.
func IsMalformedRequest(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status >= http.StatusBadRequest &&
			ue.Status < http.StatusInternalServerError &&
			!ue.Transient() &&
			ue.Status != http.StatusUnauthorized &&
			ue.Status != http.StatusForbidden
	}
	return false
}

// IsRateLimited reports whether err is specifically an upstream quota or
// rate-limit rejection (429).
func IsRateLimited(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status == http.StatusTooManyRequests
	}
	return false
}
