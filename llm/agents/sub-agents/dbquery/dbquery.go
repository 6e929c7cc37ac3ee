// Package dbquery implements the NL2SQL agent: it orchestrates SQL
// drafting and validation tools until it has a working query, then
// reports the results as structured JSON.
package dbquery

import (
	"context"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	"promosphere/server/llm/tools/bigquery"
)

type DBQueryAgent struct {
	model   string
	toolset []tools.Tool
}

func NewDBQueryAgent(model string, draft *bigquery.DraftTool, validate *bigquery.ValidateTool) *DBQueryAgent {
	return &DBQueryAgent{
		model:   model,
		toolset: []tools.Tool{draft, validate},
	}
}

func (a *DBQueryAgent) Name() string { return "db_query_agent" }

func (a *DBQueryAgent) Description() string {
	return "Turns natural-language questions into validated, executed BigQuery SQL."
}

func (a *DBQueryAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, dbqueryInstructions(), input.Request, a.toolset, input.State)
}
