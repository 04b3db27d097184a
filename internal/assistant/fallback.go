package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dushyant778/ecofarm/internal/advice"
)

// GetAIResponse answers a question and never fails: every terminal error is
// flattened into a human-readable string so the UI has exactly one rendering
// path. Callers that need to distinguish failure kinds use Ask instead.
func (c *Client) GetAIResponse(ctx context.Context, question string) string {
	answer, err := c.Ask(ctx, question)
	if err == nil {
		return answer
	}

	c.logger.ErrorContext(ctx, "AI request failed", "error", err)
	return fallbackMessage(err)
}

// GetAIResponseWithImage is the image-analysis counterpart of GetAIResponse.
func (c *Client) GetAIResponseWithImage(ctx context.Context, question string, imageBase64 string) string {
	answer, err := c.AskWithImage(ctx, question, imageBase64)
	if err == nil {
		return answer
	}

	c.logger.ErrorContext(ctx, "AI image request failed", "error", err)
	return fmt.Sprintf("Unable to analyze image at this time. Error: %s", failureReason(err))
}

// fallbackMessage maps the error taxonomy to the user-facing strings. The
// mapping switches on error kind, not message content.
func fallbackMessage(err error) string {
	switch {
	case advice.IsAuthFailure(err) || errors.Is(err, advice.ErrNotConfigured):
		return "Error: API key not configured. Please contact administrator."

	case advice.IsRateLimited(err):
		return "The AI service has reached its quota. Please try again later."

	case isNetworkFailure(err):
		return "Network error. Please check your internet connection and try again."

	default:
		return fmt.Sprintf(
			"Unable to get AI response at this time. Error: %s. Please try asking your question again later.",
			failureReason(err))
	}
}

// failureReason extracts the most specific message available: the forwarded
// upstream message when there is one, the raw error otherwise.
func failureReason(err error) string {
	var ue *advice.UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}

func isNetworkFailure(err error) bool {
	var ne *advice.NetworkError
	return errors.As(err, &ne)
}
