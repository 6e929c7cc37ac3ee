package bigquery

import (
	"context"
	"fmt"
	"strings"

	providershared "promosphere/server/llm/providers/shared"
	toolshared "promosphere/server/llm/tools/shared"
)

// DefaultMaxRows caps validation result sets and is injected as a LIMIT
// when the draft query has none.
const DefaultMaxRows = 80

const draftPromptTemplate = `You are a BigQuery SQL expert. Given the schema and a natural-language question, produce a valid GoogleSQL query that answers the request.

Rules:
- Use fully-qualified table names with backticks: ` + "`project.dataset.table`" + `.
- Minimize joins; ensure join column types match.
- Every non-aggregated SELECT column must appear in GROUP BY.
- Use valid GoogleSQL; alias with AS; wrap subqueries/UNIONs in parentheses.
- Only use columns present in the provided schema under their correct tables.
- Apply sensible WHERE/HAVING filters.
- Cap results to < %d rows (add LIMIT if needed).

Schema (tables with samples):
%s

User question:
%s

Return only the SQL.`

// DraftTool generates an initial SQL draft from a natural-language
// question. No retries here; revision on validation failure is the
// calling agent's loop.
type DraftTool struct {
	llm    providershared.LLMProvider
	cache  *SchemaCache
	model  string
	maxRow int
}

// NewDraftTool creates the NL2SQL draft generator.
func NewDraftTool(llm providershared.LLMProvider, cache *SchemaCache, model string, maxRows int) *DraftTool {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &DraftTool{llm: llm, cache: cache, model: model, maxRow: maxRows}
}

// Name returns the tool name.
func (t *DraftTool) Name() string { return "initial_bq_nl2sql" }

// Description returns the tool description.
func (t *DraftTool) Description() string {
	return "Generate an initial BigQuery SQL draft from a natural-language question using the live dataset schema."
}

// Schema declares the question argument.
func (t *DraftTool) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Natural-language question to translate into SQL.",
			},
		},
		"required": []string{"question"},
	}
}

// Execute produces the draft query and records it in state under
// "sql_query".
func (t *DraftTool) Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
	question := input.String("question")
	if question == "" {
		return toolshared.ErrorResult(fmt.Errorf("question is required")), nil
	}

	schema, err := t.cache.Snapshot(ctx)
	if err != nil {
		return toolshared.ErrorResult(fmt.Errorf("schema snapshot unavailable: %w", err)), nil
	}

	prompt := fmt.Sprintf(draftPromptTemplate, t.maxRow, schema, question)
	resp, err := t.llm.Complete(ctx, &providershared.CompletionRequest{
		Messages: []providershared.Message{{Role: providershared.RoleUser, Content: prompt}},
		Options: providershared.CompletionOptions{
			Model:       t.model,
			Temperature: 0.1,
		},
	})
	if err != nil {
		return toolshared.ErrorResult(fmt.Errorf("draft generation failed: %w", err)), nil
	}

	sql := StripCodeFences(resp.Content)
	if input.State != nil {
		input.State["sql_query"] = sql
	}
	return toolshared.SuccessResult(map[string]any{"sql": sql}), nil
}

// StripCodeFences removes markdown code fences the model tends to wrap
// SQL in.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```sql", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
