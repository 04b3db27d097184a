package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dushyant778/ecofarm/internal/advice"
)

// retryPolicy retries transient failures with exponential backoff: the delay
// starts at initialDelay and doubles after each failed attempt. The policy
// makes at most maxRetries+1 attempts, for a cumulative wait bounded by
// initialDelay * (2^maxRetries - 1).
type retryPolicy struct {
	maxRetries   int
	initialDelay time.Duration
}

// do executes fn until it succeeds, fails terminally, or the retry budget is
// exhausted. Only errors classified transient by the advice taxonomy are
// retried; auth failures and malformed requests return immediately since
// retrying cannot change an invalid credential or a bad request. The backoff
// wait observes ctx, so an abandoned request cancels any pending sleep.
func (p retryPolicy) do(ctx context.Context, logger *slog.Logger, fn func() (string, error)) (string, error) {
	delay := p.initialDelay

	for attempt := 0; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		if !advice.IsTransient(err) {
			return "", err
		}

		if attempt >= p.maxRetries {
			logger.WarnContext(ctx, "maximum retry attempts reached",
				"max_retries", p.maxRetries)
			return "", fmt.Errorf("exceeded maximum retry attempts (%d): %w", p.maxRetries, err)
		}

		logger.InfoContext(ctx, "AI call failed, retrying",
			"delay", delay,
			"attempts_left", p.maxRetries-attempt,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("cancelled during retry delay: %w", ctx.Err())
		}

		delay *= 2
	}
}
