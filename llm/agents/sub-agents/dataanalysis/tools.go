package dataanalysis

import (
	"context"
	"encoding/json"
	"fmt"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

// newAnalyzerTool wraps the data analyzer agent with the shortcuts the
// orchestrator relies on: a "N/A" question echoes the db agent output
// unchanged, and a missing or empty query_result skips analysis with a
// clear message instead of failing. The query rows from state are
// embedded into the analyzer's request.
func newAnalyzerTool(analyzer agents.Agent, rt *agents.Runtime) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Analysis question over the query results, or \"N/A\" when no analysis is needed.",
			},
		},
		"required": []string{"question"},
	}
	return tools.NewFunc("call_data_analyzer_agent",
		"Run statistical or trend analysis over the rows produced by the db query agent.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			question := input.String("question")
			dbOutput, _ := input.State["db_query_agent_output"].(string)

			// Analyzer not needed, just echo the db agent output.
			if question == "N/A" {
				return toolshared.SuccessResult(map[string]any{"output": dbOutput}), nil
			}

			queryResult, ok := input.State["query_result"]
			if !ok || queryResult == nil {
				// The validation step did not run, failed, or never
				// wrote to state. Return something useful rather than
				// crashing.
				msg := "No query_result found in state. This typically happens if the " +
					"query validation step did not run or returned no data. Skipping analysis."
				if dbOutput != "" {
					msg = dbOutput
				}
				return toolshared.SuccessResult(map[string]any{"output": msg}), nil
			}
			if rows, ok := queryResult.([]map[string]any); ok && len(rows) == 0 {
				msg := "Query executed successfully but returned 0 rows. Skipping analysis."
				if dbOutput != "" {
					msg = dbOutput
				}
				return toolshared.SuccessResult(map[string]any{"output": msg}), nil
			}

			rowsJSON, err := json.Marshal(queryResult)
			if err != nil {
				return toolshared.ErrorResult(fmt.Errorf("encoding query result: %w", err)), nil
			}
			request := fmt.Sprintf(`Question to answer: %s

Actual data to analyze for the previous question is below (JSON-like rows):
%s
`, question, rowsJSON)

			result, err := analyzer.Execute(ctx, &agents.AgentInput{Request: request, State: input.State}, rt)
			if err != nil {
				return toolshared.ErrorResult(fmt.Errorf("%s agent failed: %w", analyzer.Name(), err)), nil
			}
			if input.State != nil {
				input.State[analyzer.Name()+"_output"] = result.Content
			}
			return toolshared.SuccessResult(map[string]any{"output": result.Content}), nil
		})
}
