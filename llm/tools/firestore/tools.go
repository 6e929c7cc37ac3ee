package firestore

import (
	"context"
	"encoding/json"
	"fmt"

	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

// Tools returns the document CRUD toolset for the resource agent. Every
// tool collapses failures into the uniform {status:"error",
// error_message} envelope for the model to reason over.
func Tools(store *Store) []tools.Tool {
	return []tools.Tool{
		createDocumentTool(store),
		getDocumentTool(store),
		getAllDocumentsTool(store),
		updateDocumentTool(store),
		updateDocumentFieldTool(store),
		deleteDocumentTool(store),
	}
}

func docSchema(extra map[string]any, required ...string) map[string]any {
	props := map[string]any{
		"collection": map[string]any{
			"type":        "string",
			"description": "Firestore collection name.",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"collection"}, required...),
	}
}

func createDocumentTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"document": map[string]any{
			"type":        "object",
			"description": "Document data to store.",
		},
		"document_id": map[string]any{
			"type":        "string",
			"description": "Optional explicit document id; omit for a server-generated id.",
		},
	}, "document")
	return tools.NewFunc("fs_create_document",
		"Create a document in a Firestore collection, with an explicit or server-generated id.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			document := input.Object("document")
			if document == nil {
				return toolshared.ErrorResult(fmt.Errorf("document is required")), nil
			}
			id, err := store.CreateDocument(ctx, input.String("collection"), document, input.String("document_id"))
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"document_id": id}), nil
		})
}

func getDocumentTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"document_id": map[string]any{
			"type":        "string",
			"description": "Id of the document to retrieve.",
		},
	}, "document_id")
	return tools.NewFunc("fs_get_document",
		"Fetch a Firestore document by collection and id.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			doc, found, err := store.GetDocument(ctx, input.String("collection"), input.String("document_id"))
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"found": found, "document": doc}), nil
		})
}

func getAllDocumentsTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"include_ids": map[string]any{
			"type":        "boolean",
			"description": "Include each document's id under key 'id'. Defaults to true.",
		},
	})
	return tools.NewFunc("fs_get_all_documents",
		"Retrieve all documents in a Firestore collection.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			docs, err := store.GetAllDocuments(ctx, input.String("collection"), input.Bool("include_ids", true))
			if err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"documents": docs}), nil
		})
}

func updateDocumentTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"document_id": map[string]any{
			"type":        "string",
			"description": "Id of the document to overwrite.",
		},
		"new_document": map[string]any{
			"type":        "object",
			"description": "Full replacement document data.",
		},
	}, "document_id", "new_document")
	return tools.NewFunc("fs_update_document",
		"Overwrite an existing Firestore document with new data (full replace).",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			document := input.Object("new_document")
			if document == nil {
				return toolshared.ErrorResult(fmt.Errorf("new_document is required")), nil
			}
			id := input.String("document_id")
			if err := store.UpdateDocument(ctx, input.String("collection"), id, document); err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"document_id": id}), nil
		})
}

func updateDocumentFieldTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"document_id": map[string]any{
			"type":        "string",
			"description": "Id of the document to update.",
		},
		"field_name": map[string]any{
			"type":        "string",
			"description": "Field to update; dot notation addresses nested fields.",
		},
		"new_value": map[string]any{
			"type":        "string",
			"description": `JSON-encoded new value (e.g. "42", "true", "\"Amsterdam\""). Unparseable input is stored as the raw string.`,
		},
	}, "document_id", "field_name", "new_value")
	return tools.NewFunc("fs_update_document_field",
		"Update a single field of a Firestore document.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			raw := input.String("new_value")
			var value any
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				value = raw
			}
			id := input.String("document_id")
			field := input.String("field_name")
			if err := store.UpdateDocumentField(ctx, input.String("collection"), id, field, value); err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"document_id": id, "updated_field": field}), nil
		})
}

func deleteDocumentTool(store *Store) tools.Tool {
	schema := docSchema(map[string]any{
		"document_id": map[string]any{
			"type":        "string",
			"description": "Id of the document to delete.",
		},
	}, "document_id")
	return tools.NewFunc("fs_delete_document",
		"Delete a Firestore document by collection and id.",
		schema,
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			id := input.String("document_id")
			if err := store.DeleteDocument(ctx, input.String("collection"), id); err != nil {
				return toolshared.ErrorResult(err), nil
			}
			return toolshared.SuccessResult(map[string]any{"document_id": id}), nil
		})
}
