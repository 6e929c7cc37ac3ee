package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosphere/server/api"
	"promosphere/server/llm/agents"
	providertest "promosphere/server/llm/providers/test"
)

type staticAgent struct{}

func (staticAgent) Name() string        { return "static" }
func (staticAgent) Description() string { return "answers with a fixed string" }

func (staticAgent) Execute(_ context.Context, input *agents.AgentInput, _ *agents.Runtime) (*agents.AgentResult, error) {
	return &agents.AgentResult{Content: "answer to: " + input.Request, Success: true}, nil
}

func newAgentRouter() http.Handler {
	registry := agents.NewRegistry()
	registry.Register(staticAgent{})
	rt := &agents.Runtime{LLM: providertest.NewFakeProvider(), Logger: zerolog.Nop()}
	h := NewAgentHandler(registry, rt, zerolog.Nop())

	r := chi.NewRouter()
	r.Post("/agents/{name}", h.ExecuteAgent)
	return r
}

func TestExecuteAgent(t *testing.T) {
	router := newAgentRouter()

	req := httptest.NewRequest(http.MethodPost, "/agents/static", strings.NewReader(`{"input": "hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.AgentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "answer to: hi", resp.Result)
}

func TestExecuteAgentUnknownAgent(t *testing.T) {
	router := newAgentRouter()

	req := httptest.NewRequest(http.MethodPost, "/agents/nope", strings.NewReader(`{"input": "hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExecuteAgentMissingInput(t *testing.T) {
	router := newAgentRouter()

	req := httptest.NewRequest(http.MethodPost, "/agents/static", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
