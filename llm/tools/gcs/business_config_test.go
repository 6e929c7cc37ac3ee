package gcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessConfigCreateRequiresName(t *testing.T) {
	svc := NewBusinessConfigService(NewMemStore(), "bucket", "business_config.json")

	_, err := svc.Create(context.Background(), map[string]any{"description": "no name"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Create(context.Background(), map[string]any{"name": "   "})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBusinessConfigCreateDefaults(t *testing.T) {
	svc := NewBusinessConfigService(NewMemStore(), "bucket", "business_config.json")
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]any{"name": "Acme Retail"})
	require.NoError(t, err)
	assert.Equal(t, "", created["description"])
	assert.Equal(t, float64(0), created["budget"])
	assert.Equal(t, false, created["alerts_enabled"])

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Retail", stored["name"])
	assert.Empty(t, stored["channels"])
}

func TestBusinessConfigCreateRejectsSecond(t *testing.T) {
	svc := NewBusinessConfigService(NewMemStore(), "bucket", "business_config.json")
	ctx := context.Background()

	_, err := svc.Create(ctx, map[string]any{"name": "first"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, map[string]any{"name": "second"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestBusinessConfigGetMissing(t *testing.T) {
	svc := NewBusinessConfigService(NewMemStore(), "bucket", "business_config.json")

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
