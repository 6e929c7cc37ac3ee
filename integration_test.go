package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosphere/server/api"
	"promosphere/server/api/server"
	"promosphere/server/llm/agents"
	subagentstorage "promosphere/server/llm/agents/sub-agents/storage"
	llmtest "promosphere/server/llm/providers/test"
	"promosphere/server/llm/tools/gcs"
)

type integrationEnv struct {
	server     *httptest.Server
	provider   *llmtest.FakeProvider
	strategies *gcs.StrategyService
}

// setupTestServer wires the storage agent, an in-memory object store
// and a scripted provider behind the real router.
func setupTestServer(t testing.TB) *integrationEnv {
	store := gcs.NewMemStore()
	require.NoError(t, store.WriteObject(context.Background(), "test-bucket", "strategies.json", []byte(`[]`)))
	configs := gcs.NewBusinessConfigService(store, "test-bucket", "business_config.json")
	strategies := gcs.NewStrategyService(store, "test-bucket", "strategies.json")

	provider := llmtest.NewFakeProvider()
	rt := &agents.Runtime{LLM: provider, Logger: zerolog.Nop()}

	registry := agents.NewRegistry()
	registry.Register(subagentstorage.NewStorageAgent("test-model", configs, strategies))

	srv := server.New(server.Config{Port: 0}, registry, rt, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &integrationEnv{server: ts, provider: provider, strategies: strategies}
}

func TestStorageAgentEndToEnd(t *testing.T) {
	env := setupTestServer(t)

	env.provider.QueueToolCall("create_strategy", map[string]any{
		"strategy": map[string]any{"name": "Spring push", "channel": "email"},
	})
	env.provider.QueueText(`{"status":"success","message":"Strategy created."}`)

	body, err := json.Marshal(api.ExecuteAgentRequest{Input: "Create a spring email strategy"})
	require.NoError(t, err)

	resp, err := http.Post(env.server.URL+"/agents/storage_agent", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var agentResp api.AgentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&agentResp))
	assert.True(t, agentResp.Success)
	assert.Contains(t, agentResp.Result, "Strategy created.")
	assert.Equal(t, 2, agentResp.Turns)
	assert.Equal(t, 1, agentResp.ToolCalls)

	// The tool call must have reached the object store.
	list, err := env.strategies.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Spring push", list[0]["name"])
	assert.NotEmpty(t, list[0]["strategy_id"])
}

func TestFeedbackEndpoint(t *testing.T) {
	env := setupTestServer(t)

	body := `{"score": 1, "text": "helpful", "invocation_id": "inv-1", "user_id": "u-1"}`
	resp, err := http.Post(env.server.URL+"/feedback", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ack map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.Equal(t, "success", ack["status"])
}

func TestErrorHandling(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Post(env.server.URL+"/agents/nonexistent", "application/json",
		bytes.NewBufferString(`{"input": "hello"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(env.server.URL+"/agents/storage_agent", "application/json",
		bytes.NewBufferString(`not json`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
}
