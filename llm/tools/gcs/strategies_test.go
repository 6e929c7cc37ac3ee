package gcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStrategyFixture(t *testing.T) (*StrategyService, *MemStore) {
	t.Helper()
	store := NewMemStore()
	require.NoError(t, store.WriteObject(context.Background(), "bucket", "strategies.json", []byte(`[]`)))
	return NewStrategyService(store, "bucket", "strategies.json"), store
}

func TestStrategyCreateGeneratesRetrievableID(t *testing.T) {
	svc, _ := newStrategyFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, map[string]any{
		"strategy_name":          "weekend_bonus",
		"strategy_purpose":       "Drive weekend sales",
		"strategy_definition":    "Send 10% off coupon every Friday evening.",
		"strategy_creation_date": "2025-07-28",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0]["strategy_id"])
	assert.Equal(t, "weekend_bonus", all[0]["strategy_name"])
}

func TestStrategyCreateKeepsExplicitID(t *testing.T) {
	svc, _ := newStrategyFixture(t)

	id, err := svc.Create(context.Background(), map[string]any{
		"strategy_id":   "fixed-id",
		"strategy_name": "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestStrategyUpdateUnknownIDLeavesStoreUntouched(t *testing.T) {
	svc, _ := newStrategyFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, map[string]any{"strategy_name": "original"})
	require.NoError(t, err)

	found, err := svc.UpdateByID(ctx, map[string]any{
		"strategy_id":   "no-such-id",
		"strategy_name": "changed",
	})
	require.NoError(t, err)
	assert.False(t, found)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0]["strategy_id"])
	assert.Equal(t, "original", all[0]["strategy_name"])
}

func TestStrategyUpdateMergesFields(t *testing.T) {
	svc, _ := newStrategyFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, map[string]any{
		"strategy_name":    "original",
		"strategy_purpose": "keep me",
	})
	require.NoError(t, err)

	found, err := svc.UpdateByID(ctx, map[string]any{
		"strategy_id":   id,
		"strategy_name": "renamed",
	})
	require.NoError(t, err)
	assert.True(t, found)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "renamed", all[0]["strategy_name"])
	assert.Equal(t, "keep me", all[0]["strategy_purpose"])
}

func TestStrategyUpdateWithoutIDIsInvalid(t *testing.T) {
	svc, _ := newStrategyFixture(t)

	_, err := svc.UpdateByID(context.Background(), map[string]any{"strategy_name": "x"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStrategyDeleteMissingReturnsFalse(t *testing.T) {
	svc, _ := newStrategyFixture(t)
	ctx := context.Background()

	deleted, err := svc.DeleteByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStrategyDeleteRemovesRecord(t *testing.T) {
	svc, _ := newStrategyFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, map[string]any{"strategy_name": "x"})
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
