// Package advice provides the interface and error taxonomy for interacting
// with external AI/LLM services for agricultural question answering. It
// abstracts the details of LLM API integration (Gemini), allowing the
// application to answer farmer questions without coupling to specific
// external services.
package advice

import "context"

// Advisor defines the interface for answering agricultural questions.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Advisor interface {
	// Ask answers a farming question with the text-only advisory prompt.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - question: The farming question; must be non-empty after trimming
	//
	// Returns:
	//   - The trimmed answer text
	//   - An error from the package taxonomy if answering fails (see errors.go)
	Ask(ctx context.Context, question string) (string, error)

	// AskWithImage answers a question about a crop or farm image. The image
	// is supplied as base64-encoded JPEG data and embedded inline in the
	// upstream request.
	AskWithImage(ctx context.Context, question string, imageBase64 string) (string, error)
}
