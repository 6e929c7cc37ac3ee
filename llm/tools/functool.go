package tools

import (
	"context"

	toolshared "promosphere/server/llm/tools/shared"
)

// FuncTool adapts a plain function into a Tool. Most domain tools are
// thin wrappers over one SDK call; this keeps them declarative.
type FuncTool struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error)
}

// NewFunc builds a FuncTool.
func NewFunc(name, description string, schema map[string]any, fn func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error)) *FuncTool {
	return &FuncTool{name: name, description: description, schema: schema, fn: fn}
}

// Name returns the tool name.
func (t *FuncTool) Name() string { return t.name }

// Description returns the tool description.
func (t *FuncTool) Description() string { return t.description }

// Schema returns the tool's argument schema.
func (t *FuncTool) Schema() map[string]any { return t.schema }

// Execute invokes the wrapped function.
func (t *FuncTool) Execute(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
	return t.fn(ctx, input)
}
