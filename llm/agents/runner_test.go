package agents

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	providertest "promosphere/server/llm/providers/test"
	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

func echoTool(t *testing.T, calls *int) tools.Tool {
	t.Helper()
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
		},
		"required": []string{"text"},
	}
	return tools.NewFunc("echo", "Echoes its input.", schema,
		func(_ context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			*calls++
			input.State["echoed"] = input.String("text")
			return toolshared.SuccessResult(map[string]any{"echo": input.String("text")}), nil
		})
}

func TestRunToolLoopExecutesToolsThenAnswers(t *testing.T) {
	fake := providertest.NewFakeProvider()
	fake.QueueToolCall("echo", map[string]any{"text": "hello"})
	fake.QueueText("done: hello")

	var calls int
	rt := &Runtime{LLM: fake, Logger: zerolog.Nop()}
	state := map[string]any{}

	result, err := RunToolLoop(context.Background(), rt, LoopConfig{Model: "test-model"},
		"You echo things.", "echo hello", []tools.Tool{echoTool(t, &calls)}, state)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "done: hello", result.Content)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "hello", state["echoed"])
	assert.Equal(t, 2, result.Stats.Turns)
	assert.Equal(t, 1, result.Stats.ToolCalls)
}

func TestRunToolLoopAnswersDirectly(t *testing.T) {
	fake := providertest.NewFakeProvider()
	fake.QueueText("direct answer")

	rt := &Runtime{LLM: fake, Logger: zerolog.Nop()}
	result, err := RunToolLoop(context.Background(), rt, LoopConfig{Model: "test-model"},
		"instruction", "question", nil, map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, "direct answer", result.Content)
	assert.Equal(t, 1, result.Stats.Turns)
}

func TestRunToolLoopUnknownToolFedBackAsError(t *testing.T) {
	fake := providertest.NewFakeProvider()
	fake.QueueToolCall("missing_tool", map[string]any{})
	fake.QueueText("recovered")

	rt := &Runtime{LLM: fake, Logger: zerolog.Nop()}
	result, err := RunToolLoop(context.Background(), rt, LoopConfig{Model: "test-model"},
		"instruction", "question", nil, map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, "recovered", result.Content)

	// The error payload went back to the model as a tool message.
	last := fake.LastRequest()
	require.NotNil(t, last)
	toolMsg := last.Messages[len(last.Messages)-1]
	assert.Contains(t, toolMsg.ToolInvocation.Content, `"status":"error"`)
}

func TestRunToolLoopMaxTurns(t *testing.T) {
	fake := providertest.NewFakeProvider()
	var calls int
	tool := echoTool(t, &calls)
	for i := 0; i < 3; i++ {
		fake.QueueToolCall("echo", map[string]any{"text": "again"})
	}

	rt := &Runtime{LLM: fake, Logger: zerolog.Nop()}
	_, err := RunToolLoop(context.Background(), rt, LoopConfig{Model: "test-model", MaxTurns: 3},
		"instruction", "question", []tools.Tool{tool}, map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not converge")
	assert.Equal(t, 3, calls)
}

func TestAgentToolSharesStateAndRecordsOutput(t *testing.T) {
	fake := providertest.NewFakeProvider()
	fake.QueueText("sub answer")

	rt := &Runtime{LLM: fake, Logger: zerolog.Nop()}
	sub := &scriptedAgent{name: "sub_agent"}
	tool := NewAgentTool("call_sub_agent", sub, rt)

	state := map[string]any{}
	result, err := tool.Execute(context.Background(), &toolshared.ToolInput{
		Name:  "call_sub_agent",
		Data:  map[string]any{"request": "do the thing"},
		State: state,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "sub answer", state["sub_agent_output"])
	assert.Equal(t, "do the thing", sub.lastRequest)
}

type scriptedAgent struct {
	name        string
	lastRequest string
}

func (a *scriptedAgent) Name() string        { return a.name }
func (a *scriptedAgent) Description() string { return "test agent" }

func (a *scriptedAgent) Execute(ctx context.Context, input *AgentInput, rt *Runtime) (*AgentResult, error) {
	a.lastRequest = input.Request
	return RunToolLoop(ctx, rt, LoopConfig{Model: "test-model"}, "instruction", input.Request, nil, input.State)
}
