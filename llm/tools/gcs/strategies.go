package gcs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StrategyService manages the strategy list singleton: a JSON array of
// strategy records keyed by "strategy_id". Every mutation is a full
// read-modify-write of the array; concurrent writers can lose updates.
// Known gap, inherited behavior.
type StrategyService struct {
	store  ObjectStore
	bucket string
	object string
}

func NewStrategyService(store ObjectStore, bucket, object string) *StrategyService {
	return &StrategyService{store: store, bucket: bucket, object: object}
}

// List returns every strategy in the list.
func (s *StrategyService) List(ctx context.Context) ([]map[string]any, error) {
	var strategies []map[string]any
	if err := readJSON(ctx, s.store, s.bucket, s.object, &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// Create appends a strategy and returns its id, generating a UUID when
// the payload carries none.
func (s *StrategyService) Create(ctx context.Context, strategy map[string]any) (string, error) {
	strategies, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	id, _ := strategy["strategy_id"].(string)
	if id == "" {
		id = uuid.NewString()
	}
	strategy["strategy_id"] = id
	strategies = append(strategies, strategy)
	if err := s.save(ctx, strategies); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateByID shallow-merges the given fields into the strategy with a
// matching "strategy_id". Returns false without touching the store when
// no strategy matches.
func (s *StrategyService) UpdateByID(ctx context.Context, updated map[string]any) (bool, error) {
	id, _ := updated["strategy_id"].(string)
	if id == "" {
		return false, fmt.Errorf("update requires 'strategy_id': %w", ErrInvalidArgument)
	}
	strategies, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for i, strategy := range strategies {
		if strategy["strategy_id"] == id {
			merged := make(map[string]any, len(strategy)+len(updated))
			for k, v := range strategy {
				merged[k] = v
			}
			for k, v := range updated {
				merged[k] = v
			}
			strategies[i] = merged
			if err := s.save(ctx, strategies); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteByID removes the strategy with the given id. Returns false when
// no strategy matches; that is not an error.
func (s *StrategyService) DeleteByID(ctx context.Context, id string) (bool, error) {
	strategies, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	filtered := strategies[:0]
	for _, strategy := range strategies {
		if strategy["strategy_id"] != id {
			filtered = append(filtered, strategy)
		}
	}
	if len(filtered) == len(strategies) {
		return false, nil
	}
	if err := s.save(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StrategyService) save(ctx context.Context, strategies []map[string]any) error {
	return writeJSON(ctx, s.store, s.bucket, s.object, strategies)
}
