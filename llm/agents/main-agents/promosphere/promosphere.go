// Package promosphere implements the root conversational agent. It
// answers marketing questions directly where it can and delegates to
// the specialist sub-agents for data, resources, storage and search.
package promosphere

import (
	"context"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
)

// SubAgents bundles the specialists the root agent can delegate to.
type SubAgents struct {
	DataAnalysis agents.Agent
	Resource     agents.Agent
	Search       agents.Agent
	Storage      agents.Agent
}

type RootAgent struct {
	model   string
	toolset []tools.Tool
}

func NewRootAgent(model string, subs SubAgents, rt *agents.Runtime) *RootAgent {
	return &RootAgent{
		model: model,
		toolset: []tools.Tool{
			agents.NewAgentTool("call_data_analytics_agent", subs.DataAnalysis, rt),
			agents.NewAgentTool("call_resource_agent", subs.Resource, rt),
			agents.NewAgentTool("call_search_agent", subs.Search, rt),
			agents.NewAgentTool("call_storage_agent", subs.Storage, rt),
		},
	}
}

func (a *RootAgent) Name() string { return "promosphere" }

func (a *RootAgent) Description() string {
	return "Root assistant for creating, monitoring and optimizing marketing campaigns."
}

func (a *RootAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.3,
	}
	return agents.RunToolLoop(ctx, rt, cfg, rootInstructions(), input.Request, a.toolset, input.State)
}
