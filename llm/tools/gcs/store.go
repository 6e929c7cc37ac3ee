package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Sentinel errors for the storage layer. Callers test with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
)

// ObjectStore is the minimal object storage surface the config services
// need. The production implementation is Store; tests use MemStore.
type ObjectStore interface {
	ReadObject(ctx context.Context, bucket, object string) ([]byte, error)
	WriteObject(ctx context.Context, bucket, object string, data []byte) error
}

// Store reads and writes objects in Google Cloud Storage.
type Store struct {
	client *storage.Client
}

func NewStore(ctx context.Context) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &Store{client: client}, nil
}

func (s *Store) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	r, err := s.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("object %s/%s: %w", bucket, object, ErrNotFound)
		}
		return nil, fmt.Errorf("opening object %s/%s: %w", bucket, object, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading object %s/%s: %w", bucket, object, err)
	}
	return data, nil
}

func (s *Store) WriteObject(ctx context.Context, bucket, object string, data []byte) error {
	w := s.client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("writing object %s/%s: %w", bucket, object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing object %s/%s: %w", bucket, object, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func readJSON(ctx context.Context, store ObjectStore, bucket, object string, v any) error {
	data, err := store.ReadObject(ctx, bucket, object)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing object %s/%s: %w", bucket, object, err)
	}
	return nil
}

func writeJSON(ctx context.Context, store ObjectStore, bucket, object string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding object %s/%s: %w", bucket, object, err)
	}
	return store.WriteObject(ctx, bucket, object, data)
}
