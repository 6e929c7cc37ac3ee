// Package analytics implements the data interpretation agent. It works
// purely over rows handed to it in the request; it runs no code and
// touches no external systems.
package analytics

import (
	"context"

	"promosphere/server/llm/agents"
)

type AnalyticsAgent struct {
	model string
}

func NewAnalyticsAgent(model string) *AnalyticsAgent {
	return &AnalyticsAgent{model: model}
}

func (a *AnalyticsAgent) Name() string { return "data_analyzer_agent" }

func (a *AnalyticsAgent) Description() string {
	return "Interprets query result rows: statistics, trends, comparisons and plain-language findings."
}

func (a *AnalyticsAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, analyticsInstructions(), input.Request, nil, input.State)
}
