package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosphere/server/config"
)

func TestBuildProvidersOpenAIFallback(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "test-key"}

	p, err := buildProviders(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestBuildProvidersRequiresAKey(t *testing.T) {
	_, err := buildProviders(context.Background(), &config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
