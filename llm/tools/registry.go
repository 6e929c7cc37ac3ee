// Package tools defines the tool interface agents expose to the model
// and the registry that executes them.
package tools

import (
	"context"
	"fmt"
	"time"

	providershared "promosphere/server/llm/providers/shared"
	toolshared "promosphere/server/llm/tools/shared"
)

// Tool defines the interface that all tools must implement.
type Tool interface {
	Name() string
	Description() string
	Schema() map[string]any
	Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error)
}

// Definitions renders a toolset as provider tool definitions.
func Definitions(ts []Tool) []providershared.ToolDef {
	defs := make([]providershared.ToolDef, 0, len(ts))
	for _, t := range ts {
		defs = append(defs, providershared.ToolDef{
			Name:        t.Name(),
			Description: t.Description(),
			JSONSchema:  t.Schema(),
		})
	}
	return defs
}

// Registry manages tool registration and execution.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a new tool registry.
func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return tool, nil
}

// List returns all registered tools.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	return out
}

// Execute runs a tool by name with the given input.
func (r *Registry) Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
	tool, err := r.Get(input.Name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	if err != nil {
		return nil, err
	}
	result.Stats.ExecutionTime = time.Since(start)
	return result, nil
}
