// Package firestore wraps document CRUD on the resource project's
// Firestore database. Database-level lifecycle is not handled here; the
// resource agent delegates that to the CLI agent.
package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store provides document access for one project.
type Store struct {
	client *fs.Client
}

// NewStore creates a Firestore client for the given project.
func NewStore(ctx context.Context, project string) (*Store, error) {
	if project == "" {
		return nil, fmt.Errorf("firestore: project is required")
	}
	client, err := fs.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("firestore: failed to create client: %w", err)
	}
	return &Store{client: client}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.client.Close() }

// CreateDocument creates a document, with the given id or a
// server-generated one, and returns the resulting id.
func (s *Store) CreateDocument(ctx context.Context, collection string, document map[string]any, documentID string) (string, error) {
	col := s.client.Collection(collection)
	if documentID != "" {
		if _, err := col.Doc(documentID).Set(ctx, document); err != nil {
			return "", err
		}
		return documentID, nil
	}
	ref, _, err := col.Add(ctx, document)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetDocument fetches a document by id. The second return value is
// false when the document does not exist.
func (s *Store) GetDocument(ctx context.Context, collection, documentID string) (map[string]any, bool, error) {
	snap, err := s.client.Collection(collection).Doc(documentID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return snap.Data(), true, nil
}

// GetAllDocuments streams every document in a collection. With
// includeIDs, each document carries its id under "id".
func (s *Store) GetAllDocuments(ctx context.Context, collection string, includeIDs bool) ([]map[string]any, error) {
	docs := []map[string]any{}
	it := s.client.Collection(collection).Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		data := snap.Data()
		if data == nil {
			data = map[string]any{}
		}
		if includeIDs {
			withID := map[string]any{"id": snap.Ref.ID}
			for k, v := range data {
				withID[k] = v
			}
			data = withID
		}
		docs = append(docs, data)
	}
	return docs, nil
}

// UpdateDocument overwrites an existing document wholesale.
func (s *Store) UpdateDocument(ctx context.Context, collection, documentID string, document map[string]any) error {
	_, err := s.client.Collection(collection).Doc(documentID).Set(ctx, document)
	return err
}

// UpdateDocumentField updates a single field; dot notation addresses
// nested fields.
func (s *Store) UpdateDocumentField(ctx context.Context, collection, documentID, fieldName string, value any) error {
	_, err := s.client.Collection(collection).Doc(documentID).Update(ctx, []fs.Update{
		{Path: fieldName, Value: value},
	})
	return err
}

// DeleteDocument deletes a document by id.
func (s *Store) DeleteDocument(ctx context.Context, collection, documentID string) error {
	_, err := s.client.Collection(collection).Doc(documentID).Delete(ctx)
	return err
}
