package bigquery

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	toolshared "promosphere/server/llm/tools/shared"
)

// disallowedDML matches mutating statements on word boundaries. A
// column named updated_at must not trip it; a keyword hidden in a
// comment still can. This is a known-weak safeguard inherited from the
// original design, deliberately not hardened into a parser.
var disallowedDML = regexp.MustCompile(`(?i)\b(update|delete|drop|insert|create|alter|truncate|merge)\b`)

// IsReadOnly reports whether the statement passes the DML/DDL denylist.
func IsReadOnly(sql string) bool {
	return !disallowedDML.MatchString(sql)
}

// CleanupSQL normalizes escape artifacts from model output and ensures
// a row limit: when no "limit" substring is present (case-insensitive),
// exactly one LIMIT clause is appended.
func CleanupSQL(sql string, maxRows int) string {
	s := strings.ReplaceAll(sql, `\"`, `"`)
	s = strings.ReplaceAll(s, "\\\n", "\n")
	s = strings.ReplaceAll(s, `\'`, `'`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.TrimSpace(s)
	if !strings.Contains(strings.ToLower(s), "limit") {
		s = fmt.Sprintf("%s limit %d", s, maxRows)
	}
	return s
}

// FormatValue converts a BigQuery result value into its JSON-friendly
// form. DATE values render as "YYYY-MM-DD".
func FormatValue(v bq.Value) any {
	switch val := v.(type) {
	case civil.Date:
		return val.String()
	case civil.DateTime:
		return val.String()
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case []bq.Value:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, FormatValue(item))
		}
		return out
	case map[string]bq.Value:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = FormatValue(item)
		}
		return out
	default:
		return val
	}
}

// ValidateTool executes a draft query read-only and reports either the
// serialized rows or the engine's error text. The calling agent revises
// the SQL on error and calls again; no retry happens here.
type ValidateTool struct {
	client *Client
}

// NewValidateTool creates the validation tool over the given client.
func NewValidateTool(client *Client) *ValidateTool {
	return &ValidateTool{client: client}
}

// Name returns the tool name.
func (t *ValidateTool) Name() string { return "run_bigquery_validation" }

// Description returns the tool description.
func (t *ValidateTool) Description() string {
	return "Validate a BigQuery SQL statement by executing it read-only; returns result rows or the validation error to fix."
}

// Schema declares the sql_string argument.
func (t *ValidateTool) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sql_string": map[string]any{
				"type":        "string",
				"description": "The SQL statement to validate and execute.",
			},
		},
		"required": []string{"sql_string"},
	}
}

// Execute validates and runs the statement. The result envelope always
// carries query_result and error_message so the model sees one shape
// for every outcome.
func (t *ValidateTool) Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
	sql := input.String("sql_string")

	if !IsReadOnly(sql) {
		return toolshared.SuccessResult(map[string]any{
			"query_result":  nil,
			"error_message": "Invalid SQL: Contains disallowed DML/DDL operations.",
		}), nil
	}

	cleaned := CleanupSQL(sql, t.client.MaxRows())
	it, err := t.client.run(ctx, cleaned)
	if err != nil {
		return toolshared.SuccessResult(map[string]any{
			"query_result":  nil,
			"error_message": fmt.Sprintf("Invalid SQL: %v", err),
		}), nil
	}

	raw, err := rows(it, t.client.MaxRows())
	if err != nil {
		return toolshared.SuccessResult(map[string]any{
			"query_result":  nil,
			"error_message": fmt.Sprintf("Invalid SQL: %v", err),
		}), nil
	}

	result := make([]map[string]any, 0, len(raw))
	for _, row := range raw {
		converted := make(map[string]any, len(row))
		for k, v := range row {
			converted[k] = FormatValue(v)
		}
		result = append(result, converted)
	}

	if input.State != nil {
		input.State["query_result"] = result
	}

	if len(result) == 0 {
		return toolshared.SuccessResult(map[string]any{
			"query_result":  result,
			"error_message": "Valid SQL. Query executed successfully (no results).",
		}), nil
	}
	return toolshared.SuccessResult(map[string]any{
		"query_result":  result,
		"error_message": nil,
	}), nil
}
