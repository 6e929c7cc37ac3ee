package gcs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const registrySchemaVersion = "1.0"

// Registry is the resource registry document: a single JSON object in
// GCS listing externally provisioned resources.
type Registry struct {
	SchemaVersion   string           `json:"schema_version"`
	ProjectID       string           `json:"project_id"`
	DefaultLocation string           `json:"default_location"`
	Environment     string           `json:"environment"`
	Resources       []map[string]any `json:"resources"`
}

// RegistryConfig locates the registry object and supplies the context
// values a fresh registry is seeded with.
type RegistryConfig struct {
	Bucket      string
	Object      string
	Project     string
	Location    string
	Environment string
}

// RegistryService manages the resource registry. Loads fall back to a
// fresh empty registry when the object is missing or malformed, so a
// first write bootstraps the document.
type RegistryService struct {
	store ObjectStore
	cfg   RegistryConfig
}

func NewRegistryService(store ObjectStore, cfg RegistryConfig) *RegistryService {
	return &RegistryService{store: store, cfg: cfg}
}

func (s *RegistryService) empty() *Registry {
	return &Registry{
		SchemaVersion:   registrySchemaVersion,
		ProjectID:       s.cfg.Project,
		DefaultLocation: s.cfg.Location,
		Environment:     s.cfg.Environment,
		Resources:       []map[string]any{},
	}
}

func (s *RegistryService) load(ctx context.Context) *Registry {
	var reg Registry
	if err := readJSON(ctx, s.store, s.cfg.Bucket, s.cfg.Object, &reg); err != nil {
		return s.empty()
	}
	if reg.Resources == nil {
		return s.empty()
	}
	return &reg
}

func (s *RegistryService) save(ctx context.Context, reg *Registry) error {
	return writeJSON(ctx, s.store, s.cfg.Bucket, s.cfg.Object, reg)
}

// AddResource appends a resource to the registry and returns its id.
// "id", "type" and "name" are required; duplicate ids are rejected.
func (s *RegistryService) AddResource(ctx context.Context, resource map[string]any) (string, error) {
	if err := s.validateResource(resource); err != nil {
		return "", err
	}
	reg := s.load(ctx)
	id, _ := resource["id"].(string)
	if findResource(reg, id) >= 0 {
		return "", fmt.Errorf("resource with id %q: %w", id, ErrAlreadyExists)
	}
	now := nowISO()
	setDefault(resource, "created_at", now)
	resource["updated_at"] = now
	reg.Resources = append(reg.Resources, resource)
	if err := s.save(ctx, reg); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteResource removes a resource by id. Returns false when no
// resource matches. Resources with config.delete_protection set refuse
// deletion with an error.
func (s *RegistryService) DeleteResource(ctx context.Context, id string) (bool, error) {
	reg := s.load(ctx)
	idx := findResource(reg, id)
	if idx < 0 {
		return false, nil
	}
	if config, ok := reg.Resources[idx]["config"].(map[string]any); ok {
		if protected, _ := config["delete_protection"].(bool); protected {
			return false, fmt.Errorf("resource %q has delete_protection enabled", id)
		}
	}
	reg.Resources = append(reg.Resources[:idx], reg.Resources[idx+1:]...)
	if err := s.save(ctx, reg); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateResource shallow-merges updates into the resource with the
// given id; nested objects like config and outputs are overwritten
// whole. The id cannot change. Returns the merged resource.
func (s *RegistryService) UpdateResource(ctx context.Context, id string, updates map[string]any) (map[string]any, error) {
	if updatedID, ok := updates["id"].(string); ok && updatedID != id {
		return nil, fmt.Errorf("resource 'id' cannot change in an update: %w", ErrInvalidArgument)
	}
	reg := s.load(ctx)
	idx := findResource(reg, id)
	if idx < 0 {
		return nil, fmt.Errorf("resource with id %q: %w", id, ErrNotFound)
	}
	current := reg.Resources[idx]
	merged := make(map[string]any, len(current)+len(updates))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	merged["updated_at"] = nowISO()
	if err := s.validateResource(merged); err != nil {
		return nil, err
	}
	reg.Resources[idx] = merged
	if err := s.save(ctx, reg); err != nil {
		return nil, err
	}
	return merged, nil
}

// ListResources returns the registered resources, optionally filtered
// by type.
func (s *RegistryService) ListResources(ctx context.Context, resourceType string) []map[string]any {
	reg := s.load(ctx)
	if resourceType == "" {
		return reg.Resources
	}
	var filtered []map[string]any
	for _, r := range reg.Resources {
		if r["type"] == resourceType {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// RegistryJSON renders the full registry document as indented JSON.
func (s *RegistryService) RegistryJSON(ctx context.Context) (string, error) {
	data, err := json.MarshalIndent(s.load(ctx), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *RegistryService) validateResource(resource map[string]any) error {
	for _, key := range []string{"id", "type", "name"} {
		if v, _ := resource[key].(string); v == "" {
			return fmt.Errorf("missing required resource field %q: %w", key, ErrInvalidArgument)
		}
	}
	setDefault(resource, "location", s.cfg.Location)
	setDefault(resource, "unique", false)
	setDefault(resource, "purpose", "")
	setDefault(resource, "config", map[string]any{})
	setDefault(resource, "outputs", map[string]any{})
	setDefault(resource, "depends_on", []string{})
	setDefault(resource, "tags", map[string]any{})
	return nil
}

func findResource(reg *Registry, id string) int {
	for i, r := range reg.Resources {
		if r["id"] == id {
			return i
		}
	}
	return -1
}

// nowISO renders current UTC time like 2025-08-10T12:00:00Z.
func nowISO() string {
	return time.Now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}
