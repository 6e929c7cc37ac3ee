// Package bigquery implements the schema-aware NL2SQL pipeline: schema
// snapshots with sample rows, query drafting against the generation
// model, and read-only validation with a row cap.
package bigquery

import (
	"context"
	"fmt"

	bq "cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// Config holds the dataset coordinates. Compute and data projects may
// differ: queries bill to the compute project and read from the data
// project.
type Config struct {
	DataProject    string
	ComputeProject string
	Dataset        string
	MaxRows        int
}

// Client wraps the BigQuery SDK client for one dataset. Constructed
// once at startup and injected into the tools that need it.
type Client struct {
	bq  *bq.Client
	cfg Config
}

// NewClient creates a BigQuery client bound to the compute project.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ComputeProject == "" {
		return nil, fmt.Errorf("bigquery: compute project is required")
	}
	if cfg.DataProject == "" {
		cfg.DataProject = cfg.ComputeProject
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	client, err := bq.NewClient(ctx, cfg.ComputeProject)
	if err != nil {
		return nil, fmt.Errorf("bigquery: failed to create client: %w", err)
	}
	return &Client{bq: client, cfg: cfg}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.bq.Close() }

// Dataset returns the fully-qualified dataset name.
func (c *Client) Dataset() string {
	return c.cfg.DataProject + "." + c.cfg.Dataset
}

// MaxRows returns the configured result row cap.
func (c *Client) MaxRows() int { return c.cfg.MaxRows }

// run executes a query and returns its row iterator.
func (c *Client) run(ctx context.Context, sql string) (*bq.RowIterator, error) {
	return c.bq.Query(sql).Read(ctx)
}

// rows reads up to limit rows as name-keyed maps.
func rows(it *bq.RowIterator, limit int) ([]map[string]bq.Value, error) {
	var out []map[string]bq.Value
	for len(out) < limit {
		var row map[string]bq.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
