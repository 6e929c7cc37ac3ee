// Package config loads the server configuration from environment
// variables, optionally seeded from a local env file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Project      string   `env:"GOOGLE_CLOUD_PROJECT"`
	Location     string   `env:"GOOGLE_CLOUD_LOCATION" envDefault:"us-central1"`
	Environment  string   `env:"ENVIRONMENT" envDefault:"dev"`
	Port         int      `env:"PORT" envDefault:"8080"`
	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	GenericModel  string `env:"GENERIC_MODEL" envDefault:"gemini-2.5-flash"`
	AdvancedModel string `env:"ADVANCED_MODEL" envDefault:"gemini-2.5-pro"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`

	BigQuery  BigQueryConfig
	Firestore FirestoreConfig
	Resources ResourcesConfig
	Storage   StorageConfig
}

type BigQueryConfig struct {
	DataProject    string `env:"BQ_DATA_PROJECT_ID"`
	ComputeProject string `env:"BQ_COMPUTE_PROJECT_ID"`
	Dataset        string `env:"BQ_DATASET_ID"`
	MaxRows        int    `env:"NL2SQL_MAX_ROWS" envDefault:"80"`
}

type FirestoreConfig struct {
	Project string `env:"FIRESTORE_PROJECT"`
}

type ResourcesConfig struct {
	Project        string `env:"RESOURCES_PROJECT"`
	Location       string `env:"RESOURCES_LOCATION"`
	RegistryBucket string `env:"RESOURCE_REGISTRY_BUCKET"`
	RegistryObject string `env:"RESOURCE_REGISTRY_FILE" envDefault:"resource_registry.json"`
}

type StorageConfig struct {
	BusinessConfigBucket string `env:"BUSINESS_CONFIG_JSON_BUCKET"`
	BusinessConfigObject string `env:"BUSINESS_CONFIG_JSON_FILE" envDefault:"business_config.json"`
	StrategiesBucket     string `env:"STRATEGIES_JSON_BUCKET"`
	StrategiesObject     string `env:"STRATEGIES_JSON_FILE" envDefault:"strategies.json"`
}

// Load parses the environment into a Config. Project-scoped settings
// fall back to the primary project and location when unset.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.BigQuery.ComputeProject == "" {
		cfg.BigQuery.ComputeProject = cfg.Project
	}
	if cfg.BigQuery.DataProject == "" {
		cfg.BigQuery.DataProject = cfg.BigQuery.ComputeProject
	}
	if cfg.Firestore.Project == "" {
		cfg.Firestore.Project = cfg.Project
	}
	if cfg.Resources.Project == "" {
		cfg.Resources.Project = cfg.Project
	}
	if cfg.Resources.Location == "" {
		cfg.Resources.Location = cfg.Location
	}
	return &cfg, nil
}
