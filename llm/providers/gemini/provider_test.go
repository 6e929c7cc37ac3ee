package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promosphere/server/llm/providers/shared"
)

func TestNewProviderRequiresAPIKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGroundedSearchRequiresVertexClient(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Complete(context.Background(), &shared.CompletionRequest{
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: "current gcloud syntax for creating a firestore database"},
		},
		Options: shared.CompletionOptions{
			Model:     "gemini-2.5-flash",
			WebSearch: true,
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")
}
