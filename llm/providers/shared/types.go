package shared

// Role defines the role of a message in a conversation
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message represents a chat message exchanged with an LLM provider.
// Assistant messages may carry tool calls; tool messages carry the
// invocation result being fed back to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`

	ToolCalls      []ToolCall      `json:"tool_calls,omitempty"`
	ToolInvocation *ToolInvocation `json:"tool_invocation,omitempty"`
}

// ToolDef defines a tool/function that can be called by the LLM.
// JSONSchema uses the plain map shape {"type":"object","properties":...}.
type ToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	JSONSchema  map[string]any `json:"json_schema,omitempty"`
}

// ToolCall represents a tool call requested by the LLM.
type ToolCall struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ToolInvocation represents the serialized result of a tool call.
type ToolInvocation struct {
	CallID  string `json:"call_id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// CompletionOptions defines parameters for completion requests.
type CompletionOptions struct {
	Model       string
	MaxTokens   int
	Temperature float32
	Tools       []ToolDef
	// WebSearch enables provider-native search grounding when the
	// backend supports it (Gemini). Providers without it ignore the flag.
	WebSearch bool
}

// CompletionRequest is a provider-agnostic chat completion request.
type CompletionRequest struct {
	Messages []Message
	Options  CompletionOptions
}

// Usage reports token accounting for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is a provider-agnostic chat completion response.
// When the model requests tools, ToolCalls is non-empty and Content may
// be empty.
type CompletionResponse struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Usage     Usage      `json:"usage"`
	Model     string     `json:"model,omitempty"`
}
