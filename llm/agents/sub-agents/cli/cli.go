// Package cli implements the CLI automation agent: it runs shell and
// gcloud commands, consulting the search agent when it is unsure about
// command syntax.
package cli

import (
	"context"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	"promosphere/server/llm/tools/shell"
)

type CLIAgent struct {
	model       string
	instruction string
	toolset     []tools.Tool
}

// NewCLIAgent creates the CLI agent. searchAgent backs the
// call_search_agent tool; project and location are the defaults baked
// into the instruction for gcloud commands.
func NewCLIAgent(model string, searchAgent agents.Agent, rt *agents.Runtime, project, location string) *CLIAgent {
	toolset := shell.Tools()
	toolset = append(toolset, agents.NewAgentTool("call_search_agent", searchAgent, rt))
	return &CLIAgent{
		model:       model,
		instruction: cliInstructions(project, location),
		toolset:     toolset,
	}
}

func (a *CLIAgent) Name() string { return "cli_agent" }

func (a *CLIAgent) Description() string {
	return "Executes shell and gcloud commands, verifying uncertain syntax via web search first."
}

func (a *CLIAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, a.instruction, input.Request, a.toolset, input.State)
}
