package api

import (
	"strings"

	"github.com/Dushyant778/ecofarm/internal/advice"
)

// Common request/response structures

// AskRequest defines the payload for the AI question endpoint.
type AskRequest struct {
	// Question is the farming question to answer. Presence is checked here;
	// whitespace-only questions are rejected by the handler after trimming.
	Question string `json:"question"`

	// ImageBase64 optionally carries a base64-encoded JPEG of a crop or farm
	// photo. Its presence selects the image-analysis prompt.
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// Validate rejects questions that are empty after trimming, which the struct
// validator's required tag cannot express.
func (r *AskRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return advice.ErrEmptyQuestion
	}
	return nil
}

// AskResponse defines the successful response for the AI question endpoint.
type AskResponse struct {
	Success  bool        `json:"success"`
	Answer   string      `json:"answer"`
	Metadata AskMetadata `json:"metadata"`
}

// AskMetadata carries answer provenance information.
type AskMetadata struct {
	// Model is the upstream model that produced the answer.
	Model string `json:"model"`

	// Timestamp is the ISO 8601 time the answer was produced.
	Timestamp string `json:"timestamp"`
}
