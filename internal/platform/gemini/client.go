package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/Dushyant778/ecofarm/internal/advice"
	"github.com/Dushyant778/ecofarm/internal/config"
)

// Prompt personas. The text template frames the model as an agricultural
// advisor answering a standalone question; the image template frames it as
// analyzing an attached crop/farm photo.
const (
	textPromptTemplate = "You are an expert agricultural advisor helping farmers. " +
		"Answer the following question concisely and practically. " +
		"Focus on actionable advice suitable for farmers. Question: {{.Question}}"

	imagePromptTemplate = "You are an expert agricultural advisor. " +
		"Analyze this crop/farm image and answer: {{.Question}}"
)

// Fixed generation parameters attached to every upstream request.
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// imageMimeType is the declared MIME type for inline image payloads.
const imageMimeType = "image/jpeg"

// Client implements the advice.Advisor interface using Google's Gemini API.
// It is the sole holder of the upstream credential; the key never appears in
// any payload returned to callers.
type Client struct {
	logger *slog.Logger
	config config.LLMConfig

	// textTemplate and imageTemplate are the parsed prompt templates.
	textTemplate  *template.Template
	imageTemplate *template.Template

	// httpClient is the HTTP client for upstream requests.
	httpClient *http.Client
}

// NewClient creates a new Gemini client with the provided dependencies.
//
// An empty API key is not an error here: the server must start without one
// and surface advice.ErrNotConfigured per request instead, so a misconfigured
// deployment fails closed at the request boundary rather than at boot.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	textTmpl, err := template.New("text").Parse(textPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text prompt template: %w", err)
	}

	imageTmpl, err := template.New("image").Parse(imagePromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image prompt template: %w", err)
	}

	return &Client{
		logger:        logger,
		config:        cfg,
		textTemplate:  textTmpl,
		imageTemplate: imageTmpl,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Ask answers a farming question with the text-only advisory prompt.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	return c.generate(ctx, question, "")
}

// AskWithImage answers a question about a crop/farm image supplied as
// base64-encoded JPEG data.
func (c *Client) AskWithImage(ctx context.Context, question string, imageBase64 string) (string, error) {
	return c.generate(ctx, question, imageBase64)
}

// generate performs a single upstream call. It does not retry; retry policy
// belongs to the caller so that each logical request owns its own backoff
// state.
func (c *Client) generate(ctx context.Context, question string, imageBase64 string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", advice.ErrEmptyQuestion
	}

	if c.config.GeminiAPIKey == "" {
		return "", advice.ErrNotConfigured
	}

	prompt, err := c.createPrompt(question, imageBase64 != "")
	if err != nil {
		return "", err
	}

	parts := []part{{Text: prompt}}
	if imageBase64 != "" {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: imageMimeType,
			Data:     imageBase64,
		}})
	}

	reqBody := generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal upstream request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.config.BaseURL, "/"),
		url.PathEscape(c.config.ModelName),
		url.QueryEscape(c.config.GeminiAPIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "calling Gemini API",
		"model", c.config.ModelName,
		"question_length", len(question),
		"has_image", imageBase64 != "")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &advice.NetworkError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close upstream response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &advice.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.upstreamError(ctx, resp.StatusCode, body)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode upstream response: %w", err)
	}

	answer := extractText(&genResp)
	if answer == "" {
		return "", advice.ErrNoContent
	}

	return answer, nil
}

// createPrompt renders the persona template for the question.
func (c *Client) createPrompt(question string, withImage bool) (string, error) {
	tmpl := c.textTemplate
	if withImage {
		tmpl = c.imageTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Question: question}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// upstreamError maps a non-2xx upstream response to a typed error carrying
// the forwarded status and the extracted message.
func (c *Client) upstreamError(ctx context.Context, status int, body []byte) error {
	message := "Failed to get AI response"
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	c.logger.ErrorContext(ctx, "Gemini API error",
		"status", status,
		"message", message)

	return &advice.UpstreamError{Status: status, Message: message}
}

// extractText returns the trimmed concatenation of the first candidate's
// text parts, or "" if the response holds no usable text.
func extractText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
