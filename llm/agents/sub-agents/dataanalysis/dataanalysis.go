// Package dataanalysis implements the data analysis orchestrator. It
// decides whether a question needs SQL, further analysis, or neither,
// and delegates to the db query and data analyzer agents accordingly.
// The database schema is injected into its instruction so it never has
// to ask another agent for it.
package dataanalysis

import (
	"context"
	"fmt"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	"promosphere/server/llm/tools/bigquery"
)

type DataAnalysisAgent struct {
	model   string
	cache   *bigquery.SchemaCache
	toolset []tools.Tool
}

// NewDataAnalysisAgent wires the orchestrator to its two sub-agents and
// the schema cache backing its instruction.
func NewDataAnalysisAgent(model string, cache *bigquery.SchemaCache, dbAgent, analyzer agents.Agent, rt *agents.Runtime) *DataAnalysisAgent {
	return &DataAnalysisAgent{
		model: model,
		cache: cache,
		toolset: []tools.Tool{
			agents.NewAgentTool("call_db_query_agent", dbAgent, rt),
			newAnalyzerTool(analyzer, rt),
		},
	}
}

func (a *DataAnalysisAgent) Name() string { return "data_analysis_agent" }

func (a *DataAnalysisAgent) Description() string {
	return "Answers data questions by orchestrating NL2SQL queries and follow-up analysis."
}

func (a *DataAnalysisAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	schema, err := a.cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading database schema: %w", err)
	}
	instruction := dataAnalysisInstructions() + fmt.Sprintf(`

--------- The BigQuery schema of the relevant data with a few sample rows. ---------
%s
`, schema)

	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, instruction, input.Request, a.toolset, input.State)
}
