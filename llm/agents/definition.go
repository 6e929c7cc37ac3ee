// Package agents provides the core agent framework: the agent
// interface, the registry, and the tool-call loop that drives a hosted
// model against each agent's toolset.
package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"promosphere/server/llm/providers/shared"
)

// Agent is an LLM-backed worker. Sub-agents implement the same
// interface as the root agent and are exposed to their parent through
// the AgentTool adapter.
type Agent interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input *AgentInput, rt *Runtime) (*AgentResult, error)
}

// AgentInput carries one request into an agent. State is the
// request-scoped scratch space shared by every agent and tool in the
// same user turn.
type AgentInput struct {
	Request string         `json:"request"`
	Model   string         `json:"model,omitempty"`
	State   map[string]any `json:"-"`
}

// ModelOr returns the per-request model override, or def when the
// caller did not ask for one.
func (in *AgentInput) ModelOr(def string) string {
	if in.Model != "" {
		return in.Model
	}
	return def
}

// AgentResult is the outcome of an agent execution.
type AgentResult struct {
	Content  string         `json:"content"`
	Success  bool           `json:"success"`
	Stats    AgentStats     `json:"stats"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// AgentStats tracks execution statistics for a single run.
type AgentStats struct {
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	TokensUsed int           `json:"tokens_used"`
	Turns      int           `json:"turns"`
	ToolCalls  int           `json:"tool_calls"`
}

// Runtime bundles the request-independent dependencies handed to an
// agent execution: the model backend and a logger. Clients are
// constructed once at startup and injected, never looked up from
// process globals.
type Runtime struct {
	LLM    shared.LLMProvider
	Logger zerolog.Logger
}

// Registry manages the agents addressable over the API.
type Registry struct {
	agents map[string]Agent
}

// NewRegistry creates an agent registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds an agent to the registry.
func (r *Registry) Register(agent Agent) {
	r.agents[agent.Name()] = agent
}

// Get retrieves an agent by name.
func (r *Registry) Get(name string) (Agent, error) {
	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("agent not found: %s", name)
	}
	return agent, nil
}

// List returns all registered agents.
func (r *Registry) List() []Agent {
	out := make([]Agent, 0, len(r.agents))
	for _, a := range r.agents {
		out = append(out, a)
	}
	return out
}

// Execute runs a named agent. A fresh state map is allocated when the
// caller did not provide one.
func (r *Registry) Execute(ctx context.Context, name string, input *AgentInput, rt *Runtime) (*AgentResult, error) {
	agent, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if input.State == nil {
		input.State = make(map[string]any)
	}
	return agent.Execute(ctx, input, rt)
}
