// Package handlers implements the HTTP handlers of the agent server.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"promosphere/server/api"
	"promosphere/server/llm/agents"
)

// AgentHandler serves agent execution requests.
type AgentHandler struct {
	registry *agents.Registry
	rt       *agents.Runtime
	logger   zerolog.Logger
}

func NewAgentHandler(registry *agents.Registry, rt *agents.Runtime, logger zerolog.Logger) *AgentHandler {
	return &AgentHandler{registry: registry, rt: rt, logger: logger}
}

// ExecuteAgent handles POST /agents/{name}.
func (h *AgentHandler) ExecuteAgent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req api.ExecuteAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON request", err.Error())
		return
	}
	if req.Input == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required field", "input is required")
		return
	}

	if _, err := h.registry.Get(name); err != nil {
		writeJSONError(w, http.StatusNotFound, "Agent not found", err.Error())
		return
	}

	state := make(map[string]any, len(req.Context))
	for k, v := range req.Context {
		state[k] = v
	}

	result, err := h.registry.Execute(r.Context(), name, &agents.AgentInput{
		Request: req.Input,
		Model:   req.Model,
		State:   state,
	}, h.rt)
	if err != nil {
		h.logger.Error().Str("agent", name).Err(err).Msg("agent execution failed")
		writeJSONError(w, http.StatusInternalServerError, "Agent execution failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, api.AgentResponse{
		Success:    result.Success,
		Result:     result.Content,
		TokensUsed: result.Stats.TokensUsed,
		Turns:      result.Stats.Turns,
		ToolCalls:  result.Stats.ToolCalls,
		Duration:   result.Stats.Duration.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, api.ErrorResponse{Error: message, Details: details})
}
