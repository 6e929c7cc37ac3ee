// Package api defines the request and response shapes of the HTTP
// surface.
package api

// ExecuteAgentRequest represents a request to execute an agent.
type ExecuteAgentRequest struct {
	Input   string         `json:"input"`
	Model   string         `json:"model,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// AgentResponse represents the response from an agent execution.
type AgentResponse struct {
	Success    bool   `json:"success"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
	Turns      int    `json:"turns,omitempty"`
	ToolCalls  int    `json:"tool_calls,omitempty"`
	Duration   string `json:"duration,omitempty"`
}

// Feedback represents a user feedback submission.
type Feedback struct {
	Score        float64 `json:"score"`
	Text         string  `json:"text,omitempty"`
	InvocationID string  `json:"invocation_id"`
	UserID       string  `json:"user_id,omitempty"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
