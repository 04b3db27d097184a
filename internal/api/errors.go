package api

import (
	"errors"
	"net/http"

	"github.com/Dushyant778/ecofarm/internal/advice"
)

// MapErrorToStatusCode maps advisor errors to appropriate HTTP status codes.
// Upstream failures keep their original status code so clients can apply
// their own retry classification; everything else collapses to 400 or 500.
func MapErrorToStatusCode(err error) int {
	var ue *advice.UpstreamError
	switch {
	case errors.Is(err, advice.ErrEmptyQuestion):
		return http.StatusBadRequest

	case errors.As(err, &ue):
		return ue.Status

	// Configuration and extraction failures are server-side problems.
	case errors.Is(err, advice.ErrNotConfigured),
		errors.Is(err, advice.ErrNoContent):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details:
// in particular, which environment variable holds the credential.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var ue *advice.UpstreamError
	switch {
	case errors.Is(err, advice.ErrEmptyQuestion):
		return "Question is required"

	case errors.Is(err, advice.ErrNotConfigured):
		return "AI service is not configured. Please contact administrator."

	case errors.Is(err, advice.ErrNoContent):
		return "No response generated from AI"

	// The upstream message is part of the proxy contract and safe to forward;
	// it never contains the credential.
	case errors.As(err, &ue):
		return ue.Message

	default:
		return "Internal server error"
	}
}
