// Package shared holds the tool input/result contract shared by every
// tool implementation.
package shared

import (
	"encoding/json"
	"time"
)

// ToolInput represents input data for a tool execution. State is the
// per-request scratch space threaded through an agent run; tools use it
// to hand results to later calls (query rows, sub-agent outputs).
type ToolInput struct {
	Name  string         `json:"name"`
	Data  map[string]any `json:"data"`
	State map[string]any `json:"-"`
}

// String extracts a string argument, empty when absent or mistyped.
func (in *ToolInput) String(key string) string {
	s, _ := in.Data[key].(string)
	return s
}

// Bool extracts a bool argument with a default for absence.
func (in *ToolInput) Bool(key string, def bool) bool {
	if v, ok := in.Data[key].(bool); ok {
		return v
	}
	return def
}

// Object extracts a JSON-object argument, nil when absent.
func (in *ToolInput) Object(key string) map[string]any {
	m, _ := in.Data[key].(map[string]any)
	return m
}

// ToolResult represents the result of a tool execution. Errors from the
// wrapped operation are carried as data for the model to reason over,
// not as Go errors.
type ToolResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Stats   ToolStats      `json:"stats,omitempty"`
}

// ToolStats tracks tool execution statistics.
type ToolStats struct {
	ExecutionTime time.Duration `json:"execution_time"`
}

// Content serializes the result payload for the model. The uniform
// {status, ...} shape the agents expect lives in Data already; Error is
// folded in when set.
func (r *ToolResult) Content() string {
	payload := r.Data
	if payload == nil {
		payload = map[string]any{}
	}
	if r.Error != "" {
		payload["status"] = "error"
		payload["error_message"] = r.Error
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return `{"status":"error","error_message":"unserializable tool result"}`
	}
	return string(b)
}

// ErrorResult builds the uniform error-shaped result from an error.
func ErrorResult(err error) *ToolResult {
	return &ToolResult{
		Success: false,
		Error:   err.Error(),
		Data:    map[string]any{"status": "error", "error_message": err.Error()},
	}
}

// SuccessResult builds a success-shaped result; the status field is
// injected so every tool answers in the same envelope.
func SuccessResult(data map[string]any) *ToolResult {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["status"]; !ok {
		data["status"] = "success"
	}
	return &ToolResult{Success: true, Data: data}
}
