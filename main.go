package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"promosphere/server/api/server"
	"promosphere/server/config"
	"promosphere/server/llm/agents"
	"promosphere/server/llm/agents/main-agents/promosphere"
	"promosphere/server/llm/agents/sub-agents/analytics"
	"promosphere/server/llm/agents/sub-agents/cli"
	"promosphere/server/llm/agents/sub-agents/dataanalysis"
	"promosphere/server/llm/agents/sub-agents/dbquery"
	"promosphere/server/llm/agents/sub-agents/resource"
	"promosphere/server/llm/agents/sub-agents/search"
	"promosphere/server/llm/agents/sub-agents/storage"
	"promosphere/server/llm/providers"
	"promosphere/server/llm/providers/gemini"
	"promosphere/server/llm/providers/openai"
	"promosphere/server/llm/providers/shared"
	"promosphere/server/llm/tools/bigquery"
	"promosphere/server/llm/tools/firestore"
	"promosphere/server/llm/tools/gcs"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(logger zerolog.Logger) error {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = "env_vars.txt"
	}
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	llm, err := buildProviders(ctx, cfg)
	if err != nil {
		return err
	}
	rt := &agents.Runtime{LLM: llm, Logger: logger}

	// Data clients.
	bqClient, err := bigquery.NewClient(ctx, bigquery.Config{
		DataProject:    cfg.BigQuery.DataProject,
		ComputeProject: cfg.BigQuery.ComputeProject,
		Dataset:        cfg.BigQuery.Dataset,
		MaxRows:        cfg.BigQuery.MaxRows,
	})
	if err != nil {
		return fmt.Errorf("creating bigquery client: %w", err)
	}
	schemaCache := bigquery.NewSchemaCache(bqClient, logger)

	fsStore, err := firestore.NewStore(ctx, cfg.Firestore.Project)
	if err != nil {
		return fmt.Errorf("creating firestore client: %w", err)
	}

	objects, err := gcs.NewStore(ctx)
	if err != nil {
		return fmt.Errorf("creating storage client: %w", err)
	}
	configs := gcs.NewBusinessConfigService(objects, cfg.Storage.BusinessConfigBucket, cfg.Storage.BusinessConfigObject)
	strategies := gcs.NewStrategyService(objects, cfg.Storage.StrategiesBucket, cfg.Storage.StrategiesObject)
	registrySvc := gcs.NewRegistryService(objects, gcs.RegistryConfig{
		Bucket:      cfg.Resources.RegistryBucket,
		Object:      cfg.Resources.RegistryObject,
		Project:     cfg.Resources.Project,
		Location:    cfg.Resources.Location,
		Environment: cfg.Environment,
	})

	// Agents, leaves first.
	searchAgent := search.NewSearchAgent(cfg.GenericModel)
	cliAgent := cli.NewCLIAgent(cfg.AdvancedModel, searchAgent, rt, cfg.Resources.Project, cfg.Resources.Location)
	analyzerAgent := analytics.NewAnalyticsAgent(cfg.GenericModel)
	dbAgent := dbquery.NewDBQueryAgent(cfg.GenericModel,
		bigquery.NewDraftTool(llm, schemaCache, cfg.GenericModel, cfg.BigQuery.MaxRows),
		bigquery.NewValidateTool(bqClient),
	)
	dataAgent := dataanalysis.NewDataAnalysisAgent(cfg.GenericModel, schemaCache, dbAgent, analyzerAgent, rt)
	resourceAgent := resource.NewResourceAgent(cfg.AdvancedModel, fsStore, registrySvc, cliAgent, rt, cfg.Resources.Project, cfg.Resources.Location)
	storageAgent := storage.NewStorageAgent(cfg.GenericModel, configs, strategies)
	rootAgent := promosphere.NewRootAgent(cfg.GenericModel, promosphere.SubAgents{
		DataAnalysis: dataAgent,
		Resource:     resourceAgent,
		Search:       searchAgent,
		Storage:      storageAgent,
	}, rt)

	registry := agents.NewRegistry()
	for _, a := range []agents.Agent{
		rootAgent, dataAgent, dbAgent, analyzerAgent,
		resourceAgent, storageAgent, searchAgent, cliAgent,
	} {
		registry.Register(a)
	}

	srv := server.New(server.Config{
		Port:         cfg.Port,
		AllowOrigins: cfg.AllowOrigins,
	}, registry, rt, logger)
	return srv.Run()
}

// buildProviders registers every configured backend and returns the one
// the agents run on. Gemini is preferred; OpenAI serves as fallback.
func buildProviders(ctx context.Context, cfg *config.Config) (shared.LLMProvider, error) {
	registry := providers.NewRegistry()

	if cfg.GeminiAPIKey != "" {
		p, err := gemini.NewProvider(ctx, gemini.Config{
			APIKey:   cfg.GeminiAPIKey,
			Project:  cfg.Project,
			Location: cfg.Location,
		})
		if err != nil {
			return nil, fmt.Errorf("creating gemini provider: %w", err)
		}
		registry.Register(p)
	}
	if cfg.OpenAIAPIKey != "" {
		p, err := openai.NewProvider(openai.Config{APIKey: cfg.OpenAIAPIKey})
		if err != nil {
			return nil, fmt.Errorf("creating openai provider: %w", err)
		}
		registry.Register(p)
	}

	if p, err := registry.Get("gemini"); err == nil {
		return p, nil
	}
	if p, err := registry.Get("openai"); err == nil {
		return p, nil
	}
	return nil, fmt.Errorf("no model provider configured: set GEMINI_API_KEY or OPENAI_API_KEY")
}
