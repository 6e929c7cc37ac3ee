package gcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryFixture() (*RegistryService, *MemStore) {
	store := NewMemStore()
	svc := NewRegistryService(store, RegistryConfig{
		Bucket:      "bucket",
		Object:      "resource_registry.json",
		Project:     "proj",
		Location:    "us-central1",
		Environment: "dev",
	})
	return svc, store
}

func TestRegistryBootstrapsWhenMissing(t *testing.T) {
	svc, _ := newRegistryFixture()

	resources := svc.ListResources(context.Background(), "")
	assert.Empty(t, resources)

	doc, err := svc.RegistryJSON(context.Background())
	require.NoError(t, err)
	assert.Contains(t, doc, `"schema_version": "1.0"`)
	assert.Contains(t, doc, `"project_id": "proj"`)
}

func TestRegistryBootstrapsWhenCorrupt(t *testing.T) {
	svc, store := newRegistryFixture()
	ctx := context.Background()
	require.NoError(t, store.WriteObject(ctx, "bucket", "resource_registry.json", []byte("{not json")))

	assert.Empty(t, svc.ListResources(ctx, ""))
}

func TestRegistryAddRequiresIDTypeName(t *testing.T) {
	svc, _ := newRegistryFixture()

	_, err := svc.AddResource(context.Background(), map[string]any{"type": "firestore_db", "name": "x"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegistryAddDefaultsAndTimestamps(t *testing.T) {
	svc, _ := newRegistryFixture()
	ctx := context.Background()

	id, err := svc.AddResource(ctx, map[string]any{
		"id":   "firestore_db/(default)",
		"type": "firestore_db",
		"name": "(default)",
	})
	require.NoError(t, err)
	assert.Equal(t, "firestore_db/(default)", id)

	resources := svc.ListResources(ctx, "firestore_db")
	require.Len(t, resources, 1)
	r := resources[0]
	assert.Equal(t, "us-central1", r["location"])
	assert.Equal(t, false, r["unique"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, r["created_at"])
	assert.Equal(t, r["created_at"], r["updated_at"])
}

func TestRegistryAddRejectsDuplicateID(t *testing.T) {
	svc, _ := newRegistryFixture()
	ctx := context.Background()

	resource := map[string]any{"id": "r1", "type": "storage_bucket", "name": "b"}
	_, err := svc.AddResource(ctx, resource)
	require.NoError(t, err)

	_, err = svc.AddResource(ctx, map[string]any{"id": "r1", "type": "storage_bucket", "name": "b2"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRegistryDeleteHonorsDeleteProtection(t *testing.T) {
	svc, _ := newRegistryFixture()
	ctx := context.Background()

	_, err := svc.AddResource(ctx, map[string]any{
		"id":     "protected",
		"type":   "firestore_db",
		"name":   "db",
		"config": map[string]any{"delete_protection": true},
	})
	require.NoError(t, err)

	_, err = svc.DeleteResource(ctx, "protected")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete_protection")

	// Still registered.
	assert.Len(t, svc.ListResources(ctx, ""), 1)
}

func TestRegistryDeleteMissingReturnsFalse(t *testing.T) {
	svc, _ := newRegistryFixture()

	deleted, err := svc.DeleteResource(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistryUpdateForbidsIDChange(t *testing.T) {
	svc, _ := newRegistryFixture()
	ctx := context.Background()

	_, err := svc.AddResource(ctx, map[string]any{"id": "r1", "type": "t", "name": "n"})
	require.NoError(t, err)

	_, err = svc.UpdateResource(ctx, "r1", map[string]any{"id": "r2"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegistryUpdateMergesAndRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newRegistryFixture()
	ctx := context.Background()

	_, err := svc.AddResource(ctx, map[string]any{
		"id":      "r1",
		"type":    "t",
		"name":    "n",
		"purpose": "keep",
	})
	require.NoError(t, err)

	merged, err := svc.UpdateResource(ctx, "r1", map[string]any{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", merged["name"])
	assert.Equal(t, "keep", merged["purpose"])
	assert.Regexp(t, `Z$`, merged["updated_at"])
}

func TestRegistryUpdateMissingResource(t *testing.T) {
	svc, _ := newRegistryFixture()

	_, err := svc.UpdateResource(context.Background(), "ghost", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
