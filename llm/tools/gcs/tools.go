package gcs

import (
	"context"
	"fmt"

	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

// StorageTools returns the storage agent's toolset over the two
// singleton configuration objects.
func StorageTools(configs *BusinessConfigService, strategies *StrategyService) []tools.Tool {
	return []tools.Tool{
		getBusinessConfigurationTool(configs),
		createBusinessConfigurationTool(configs),
		getAllStrategiesTool(strategies),
		createStrategyTool(strategies),
		updateStrategyTool(strategies),
		deleteStrategyTool(strategies),
	}
}

func getBusinessConfigurationTool(configs *BusinessConfigService) tools.Tool {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	return tools.NewFunc("get_business_configuration",
		"Retrieve the business configuration (definition, description, goals).",
		schema,
		func(ctx context.Context, _ *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			config, err := configs.Get(ctx)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"config": config}), nil
		})
}

func createBusinessConfigurationTool(configs *BusinessConfigService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"config": map[string]any{
				"type":        "object",
				"description": "Business configuration data; 'name' is required.",
			},
		},
		"required": []string{"config"},
	}
	return tools.NewFunc("create_business_configuration",
		"Create the business configuration object. Fails if it already exists.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			config := input.Object("config")
			if config == nil {
				return toolshared.ErrorResult(fmt.Errorf("config is required")), nil
			}
			created, err := configs.Create(ctx, config)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"config": created}), nil
		})
}

func getAllStrategiesTool(strategies *StrategyService) tools.Tool {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	return tools.NewFunc("get_all_strategies",
		"Fetch the list of all active strategies.",
		schema,
		func(ctx context.Context, _ *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			list, err := strategies.List(ctx)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"strategies": list}), nil
		})
}

func createStrategyTool(strategies *StrategyService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strategy": map[string]any{
				"type": "object",
				"description": "Strategy record with strategy_name, strategy_purpose, " +
					"strategy_definition and strategy_creation_date (YYYY-MM-DD).",
			},
		},
		"required": []string{"strategy"},
	}
	return tools.NewFunc("create_strategy",
		"Add a new strategy to the strategies configuration.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			strategy := input.Object("strategy")
			if strategy == nil {
				return toolshared.ErrorResult(fmt.Errorf("strategy is required")), nil
			}
			id, err := strategies.Create(ctx, strategy)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"strategy_id": id}), nil
		})
}

func updateStrategyTool(strategies *StrategyService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"updated_strategy": map[string]any{
				"type":        "object",
				"description": "Strategy fields to update; must include strategy_id.",
			},
		},
		"required": []string{"updated_strategy"},
	}
	return tools.NewFunc("update_strategy",
		"Update an existing strategy by its id.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			updated := input.Object("updated_strategy")
			if updated == nil {
				return toolshared.ErrorResult(fmt.Errorf("updated_strategy is required")), nil
			}
			found, err := strategies.UpdateByID(ctx, updated)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			if !found {
				return toolshared.ErrorResult(fmt.Errorf("strategy not found")), nil
			}
			return toolshared.SuccessResult(nil), nil
		})
}

func deleteStrategyTool(strategies *StrategyService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strategy_id": map[string]any{
				"type":        "string",
				"description": "UUID of the strategy to delete.",
			},
		},
		"required": []string{"strategy_id"},
	}
	return tools.NewFunc("delete_strategy",
		"Delete a strategy by its id.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			found, err := strategies.DeleteByID(ctx, input.String("strategy_id"))
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			if !found {
				return toolshared.ErrorResult(fmt.Errorf("strategy not found")), nil
			}
			return toolshared.SuccessResult(nil), nil
		})
}

// RegistryTools returns the resource registry toolset used by the
// resource agent.
func RegistryTools(registry *RegistryService) []tools.Tool {
	return []tools.Tool{
		registryAddTool(registry),
		registryDeleteTool(registry),
		registryUpdateTool(registry),
		registryListTool(registry),
		registryJSONTool(registry),
	}
}

func registryAddTool(registry *RegistryService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resource": map[string]any{
				"type": "object",
				"description": "Resource record; 'id', 'type' and 'name' are required. " +
					"Optional: location, unique, purpose, config, outputs, depends_on, tags.",
			},
		},
		"required": []string{"resource"},
	}
	return tools.NewFunc("registry_add_resource",
		"Register a provisioned resource in the resource registry.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			resource := input.Object("resource")
			if resource == nil {
				return toolshared.ErrorResult(fmt.Errorf("resource is required")), nil
			}
			id, err := registry.AddResource(ctx, resource)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"resource_id": id}), nil
		})
}

func registryDeleteTool(registry *RegistryService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resource_id": map[string]any{
				"type":        "string",
				"description": "Id of the resource to remove from the registry.",
			},
		},
		"required": []string{"resource_id"},
	}
	return tools.NewFunc("registry_delete_resource",
		"Remove a resource from the registry. Refuses when delete_protection is set.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			deleted, err := registry.DeleteResource(ctx, input.String("resource_id"))
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"deleted": deleted}), nil
		})
}

func registryUpdateTool(registry *RegistryService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resource_id": map[string]any{
				"type":        "string",
				"description": "Id of the resource to update.",
			},
			"updates": map[string]any{
				"type":        "object",
				"description": "Fields to merge into the resource; 'id' cannot change.",
			},
		},
		"required": []string{"resource_id", "updates"},
	}
	return tools.NewFunc("registry_update_resource",
		"Update fields of a registered resource.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			updates := input.Object("updates")
			if updates == nil {
				return toolshared.ErrorResult(fmt.Errorf("updates is required")), nil
			}
			resource, err := registry.UpdateResource(ctx, input.String("resource_id"), updates)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"resource": resource}), nil
		})
}

func registryListTool(registry *RegistryService) tools.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resource_type": map[string]any{
				"type":        "string",
				"description": "Optional type filter, e.g. firestore_db or storage_bucket.",
			},
		},
	}
	return tools.NewFunc("registry_list_resources",
		"List registered resources, optionally filtered by type.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			resources := registry.ListResources(ctx, input.String("resource_type"))
			return toolshared.SuccessResult(map[string]any{"resources": resources}), nil
		})
}

func registryJSONTool(registry *RegistryService) tools.Tool {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	return tools.NewFunc("registry_get_json",
		"Return the entire resource registry document as JSON.",
		schema,
		func(ctx context.Context, _ *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			doc, err := registry.RegistryJSON(ctx)
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"registry": doc}), nil
		})
}
