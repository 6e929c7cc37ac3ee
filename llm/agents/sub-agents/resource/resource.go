// Package resource implements the cloud resource orchestration agent:
// Firestore document CRUD, the resource registry, and database-level
// operations delegated to the CLI agent.
package resource

import (
	"context"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	fstools "promosphere/server/llm/tools/firestore"
	"promosphere/server/llm/tools/gcs"
)

type ResourceAgent struct {
	model       string
	instruction string
	toolset     []tools.Tool
}

// NewResourceAgent creates the resource agent. Firestore documents are
// handled directly through store; database creation goes through the
// CLI agent; provisioned resources are tracked in registry.
func NewResourceAgent(model string, store *fstools.Store, registry *gcs.RegistryService, cliAgent agents.Agent, rt *agents.Runtime, project, location string) *ResourceAgent {
	toolset := fstools.Tools(store)
	toolset = append(toolset, gcs.RegistryTools(registry)...)
	toolset = append(toolset, agents.NewAgentTool("call_cli_agent", cliAgent, rt))
	return &ResourceAgent{
		model:       model,
		instruction: resourceInstructions(project, location),
		toolset:     toolset,
	}
}

func (a *ResourceAgent) Name() string { return "resource_agent" }

func (a *ResourceAgent) Description() string {
	return "Reads, creates, updates and deletes Google Cloud resources with idempotency and safety checks."
}

func (a *ResourceAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, a.instruction, input.Request, a.toolset, input.State)
}
