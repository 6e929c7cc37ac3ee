// Package search implements the web search agent. It has no function
// tools; answers come from search-grounded generation.
package search

import (
	"context"

	"promosphere/server/llm/agents"
)

type SearchAgent struct {
	model string
}

// NewSearchAgent creates the search agent on the given model.
func NewSearchAgent(model string) *SearchAgent {
	return &SearchAgent{model: model}
}

func (a *SearchAgent) Name() string { return "search_agent" }

func (a *SearchAgent) Description() string {
	return "Answers questions using Google Search with minimal, source-cited evidence."
}

func (a *SearchAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:     input.ModelOr(a.model),
		WebSearch: true,
	}
	return agents.RunToolLoop(ctx, rt, cfg, searchInstructions(), input.Request, nil, input.State)
}
