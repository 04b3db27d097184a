package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dushyant778/ecofarm/internal/advice"
	"github.com/Dushyant778/ecofarm/internal/config"
)

// askRequest is the wire format sent to the proxy endpoint.
type askRequest struct {
	Question    string `json:"question"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// askResponse is the proxy's success envelope.
type askResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

// askError is the proxy's failure envelope.
type askError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Client calls the proxy endpoint and applies the bounded
// exponential-backoff retry policy. Each call owns its own retry counter and
// delay, so concurrent questions need no coordination.
type Client struct {
	logger     *slog.Logger
	endpoint   string
	httpClient *http.Client
	retry      retryPolicy
}

// New creates a client wrapper for the given endpoint configuration.
func New(logger *slog.Logger, cfg config.ClientConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint cannot be empty")
	}

	delay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = time.Second
	}

	return &Client{
		logger:     logger,
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		retry: retryPolicy{
			maxRetries:   cfg.MaxRetries,
			initialDelay: delay,
		},
	}, nil
}

// Ask sends a question to the proxy endpoint and returns the trimmed answer.
// Failures are returned as errors from the advice taxonomy so callers can
// branch on kind (transient, auth, malformed request).
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	return c.ask(ctx, question, "")
}

// AskWithImage sends a question about a base64-encoded JPEG image.
func (c *Client) AskWithImage(ctx context.Context, question string, imageBase64 string) (string, error) {
	return c.ask(ctx, question, imageBase64)
}

func (c *Client) ask(ctx context.Context, question string, imageBase64 string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", advice.ErrEmptyQuestion
	}

	req := askRequest{Question: question, ImageBase64: imageBase64}
	return c.retry.do(ctx, c.logger, func() (string, error) {
		return c.call(ctx, req)
	})
}

// call performs a single round trip to the proxy endpoint.
func (c *Client) call(ctx context.Context, req askRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &advice.NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &advice.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Failed to get AI response"
		var errResp askError
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return "", &advice.UpstreamError{Status: resp.StatusCode, Message: message}
	}

	var okResp askResponse
	if err := json.Unmarshal(body, &okResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !okResp.Success || strings.TrimSpace(okResp.Answer) == "" {
		return "", advice.ErrNoContent
	}

	return strings.TrimSpace(okResp.Answer), nil
}
