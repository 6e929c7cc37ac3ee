package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"promosphere/server/api"
)

// FeedbackHandler records user feedback. Submissions are logged and
// always acknowledged with a fixed success payload; a logging failure
// must never surface to the client.
type FeedbackHandler struct {
	logger zerolog.Logger
}

func NewFeedbackHandler(logger zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{logger: logger}
}

// CollectFeedback handles POST /feedback.
func (h *FeedbackHandler) CollectFeedback(w http.ResponseWriter, r *http.Request) {
	var fb api.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON request", err.Error())
		return
	}

	h.logger.Info().
		Float64("score", fb.Score).
		Str("text", fb.Text).
		Str("invocation_id", fb.InvocationID).
		Str("user_id", fb.UserID).
		Msg("feedback received")

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
