package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Dushyant778/ecofarm/internal/advice"
	"github.com/Dushyant778/ecofarm/internal/api/shared"
)

// AskHandler handles AI question-answering HTTP requests. It is the proxy
// boundary between browser/CLI clients and the upstream generative-AI
// service: the upstream credential stays behind it.
type AskHandler struct {
	advisor   advice.Advisor
	modelName string
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(advisor advice.Advisor, modelName string) *AskHandler {
	return &AskHandler{
		advisor:   advisor,
		modelName: modelName,
	}
}

// Ask handles POST /api/gemini requests.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Reject blank questions before any upstream call is made.
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Question is required")
		return
	}

	var answer string
	var err error
	if req.ImageBase64 != "" {
		answer, err = h.advisor.AskWithImage(r.Context(), req.Question, req.ImageBase64)
	} else {
		answer, err = h.advisor.Ask(r.Context(), req.Question)
	}
	if err != nil {
		h.respondWithAdviceError(w, r, err)
		return
	}

	response := AskResponse{
		Success: true,
		Answer:  answer,
		Metadata: AskMetadata{
			Model:     h.modelName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	slog.InfoContext(r.Context(), "answered question",
		"question_length", len(req.Question),
		"answer_length", len(answer),
		"has_image", req.ImageBase64 != "")

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// respondWithAdviceError maps advisor errors to the proxy's error contract.
// Upstream failures are forwarded with their original status code; local
// failures map to 400/500 with sanitized messages.
func (h *AskHandler) respondWithAdviceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
