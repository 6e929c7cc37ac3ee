// Package storage implements the agent managing the business
// configuration and strategy list objects in Cloud Storage.
package storage

import (
	"context"

	"promosphere/server/llm/agents"
	"promosphere/server/llm/tools"
	"promosphere/server/llm/tools/gcs"
)

type StorageAgent struct {
	model   string
	toolset []tools.Tool
}

func NewStorageAgent(model string, configs *gcs.BusinessConfigService, strategies *gcs.StrategyService) *StorageAgent {
	return &StorageAgent{
		model:   model,
		toolset: gcs.StorageTools(configs, strategies),
	}
}

func (a *StorageAgent) Name() string { return "storage_agent" }

func (a *StorageAgent) Description() string {
	return "Reads and manages the business configuration and strategies stored on Google Cloud Storage."
}

func (a *StorageAgent) Execute(ctx context.Context, input *agents.AgentInput, rt *agents.Runtime) (*agents.AgentResult, error) {
	cfg := agents.LoopConfig{
		Model:       input.ModelOr(a.model),
		Temperature: 0.01,
	}
	return agents.RunToolLoop(ctx, rt, cfg, storageInstructions(), input.Request, a.toolset, input.State)
}
