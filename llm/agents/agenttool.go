package agents

import (
	"context"
	"fmt"

	toolshared "promosphere/server/llm/tools/shared"
)

// AgentTool exposes an agent as a callable tool, so a parent agent can
// delegate a natural-language request to it mid-loop. The sub-agent's
// answer is also recorded in state under "<agent>_output" for later
// tools in the same turn.
type AgentTool struct {
	toolName string
	agent    Agent
	rt       *Runtime
}

// NewAgentTool wraps agent under the given tool name.
func NewAgentTool(toolName string, agent Agent, rt *Runtime) *AgentTool {
	return &AgentTool{toolName: toolName, agent: agent, rt: rt}
}

// Name returns the tool name.
func (t *AgentTool) Name() string { return t.toolName }

// Description returns the wrapped agent's description.
func (t *AgentTool) Description() string { return t.agent.Description() }

// Schema declares the single natural-language request argument.
func (t *AgentTool) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"request": map[string]any{
				"type":        "string",
				"description": "Natural-language request for the " + t.agent.Name() + " agent.",
			},
		},
		"required": []string{"request"},
	}
}

// Execute runs the wrapped agent, sharing the caller's state map.
func (t *AgentTool) Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
	request := input.String("request")
	if request == "" {
		return toolshared.ErrorResult(fmt.Errorf("request is required")), nil
	}

	result, err := t.agent.Execute(ctx, &AgentInput{Request: request, State: input.State}, t.rt)
	if err != nil {
		return toolshared.ErrorResult(fmt.Errorf("%s agent failed: %w", t.agent.Name(), err)), nil
	}

	if input.State != nil {
		input.State[t.agent.Name()+"_output"] = result.Content
	}

	return toolshared.SuccessResult(map[string]any{"output": result.Content}), nil
}
