package bigquery

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
)

const sampleRowCount = 5

// SchemaCache memoizes the textual schema snapshot for the dataset.
// The snapshot is expensive (one metadata call plus one sampling query
// per table), so it is built once per process and refreshed only
// through Invalidate.
type SchemaCache struct {
	mu       sync.Mutex
	client   *Client
	logger   zerolog.Logger
	snapshot string
}

// NewSchemaCache creates a cache over the given client.
func NewSchemaCache(client *Client, logger zerolog.Logger) *SchemaCache {
	return &SchemaCache{client: client, logger: logger}
}

// Snapshot returns the cached schema description, building it on first
// use.
func (sc *SchemaCache) Snapshot(ctx context.Context) (string, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.snapshot != "" {
		return sc.snapshot, nil
	}
	snapshot, err := sc.build(ctx)
	if err != nil {
		return "", err
	}
	sc.snapshot = snapshot
	return snapshot, nil
}

// Invalidate drops the cached snapshot so the next Snapshot call
// rebuilds it.
func (sc *SchemaCache) Invalidate() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.snapshot = ""
}

// build renders every table in the dataset as DDL text. Regular tables
// get column definitions plus up to five example rows as INSERT
// literals; views are rendered as their defining query; ICEBERG
// external tables carry connection and URI metadata. Other table kinds
// are skipped.
func (sc *SchemaCache) build(ctx context.Context) (string, error) {
	c := sc.client
	sc.logger.Info().Str("dataset", c.Dataset()).Msg("building schema snapshot")

	var ddl strings.Builder
	it := c.bq.DatasetInProject(c.cfg.DataProject, c.cfg.Dataset).Tables(ctx)
	for {
		table, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return "", fmt.Errorf("listing tables in %s: %w", c.Dataset(), err)
		}

		md, err := table.Metadata(ctx)
		if err != nil {
			return "", fmt.Errorf("metadata for %s: %w", table.TableID, err)
		}
		ref := fmt.Sprintf("%s.%s.%s", table.ProjectID, table.DatasetID, table.TableID)
		sc.logger.Debug().Str("table", ref).Str("type", string(md.Type)).Msg("discovered table")

		switch md.Type {
		case bq.ViewTable:
			fmt.Fprintf(&ddl, "CREATE OR REPLACE VIEW `%s` AS\n%s;\n\n", ref, md.ViewQuery)
		case bq.ExternalTable:
			appendIcebergDDL(&ddl, ref, md)
		case bq.RegularTable:
			ddl.WriteString(sc.tableDDL(ctx, ref, md))
		}
	}
	return ddl.String(), nil
}

// tableDDL renders a CREATE TABLE statement followed by best-effort
// sample rows. Sampling failure degrades to a placeholder comment, not
// a hard failure.
func (sc *SchemaCache) tableDDL(ctx context.Context, ref string, md *bq.TableMetadata) string {
	cols := make([]string, 0, len(md.Schema))
	for _, field := range md.Schema {
		def := fmt.Sprintf("  `%s` %s", field.Name, columnType(field))
		if field.Description != "" {
			def += fmt.Sprintf(" OPTIONS(description='%s')", strings.ReplaceAll(field.Description, "'", "''"))
		}
		cols = append(cols, def)
	}
	ddl := fmt.Sprintf("CREATE OR REPLACE TABLE `%s` (\n%s\n);\n\n", ref, strings.Join(cols, ",\n"))

	samples, err := sc.sampleRows(ctx, ref, md.Schema)
	if err != nil {
		sc.logger.Warn().Str("table", ref).Err(err).Msg("sample retrieval failed")
		return ddl + fmt.Sprintf("-- NOTE: Could not retrieve sample rows for table %s.\n\n", ref)
	}
	if len(samples) > 0 {
		ddl += fmt.Sprintf("-- Example values for table `%s`:\n", ref)
		for _, row := range samples {
			ddl += fmt.Sprintf("INSERT INTO `%s` VALUES (%s);\n", ref, row)
		}
	}
	return ddl + "\n"
}

// sampleRows fetches up to five rows and serializes each as a
// comma-separated list of SQL literals in schema column order.
func (sc *SchemaCache) sampleRows(ctx context.Context, ref string, schema bq.Schema) ([]string, error) {
	it, err := sc.client.run(ctx, fmt.Sprintf("SELECT * FROM `%s` LIMIT %d", ref, sampleRowCount))
	if err != nil {
		return nil, err
	}
	sampled, err := rows(it, sampleRowCount)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(sampled))
	for _, row := range sampled {
		values := make([]string, 0, len(schema))
		for _, field := range schema {
			values = append(values, SerializeValue(row[field.Name]))
		}
		out = append(out, strings.Join(values, ", "))
	}
	return out, nil
}

func appendIcebergDDL(ddl *strings.Builder, ref string, md *bq.TableMetadata) {
	cfg := md.ExternalDataConfig
	if cfg == nil || cfg.SourceFormat != "ICEBERG" {
		return
	}
	uris := make([]string, 0, len(cfg.SourceURIs))
	for _, uri := range cfg.SourceURIs {
		uris = append(uris, "'"+uri+"'")
	}
	cols := make([]string, 0, len(md.Schema))
	for _, field := range md.Schema {
		cols = append(cols, fmt.Sprintf("  `%s` %s", field.Name, columnType(field)))
	}
	fmt.Fprintf(ddl,
		"CREATE EXTERNAL TABLE `%s` (\n%s\n)\nWITH CONNECTION `%s`\nOPTIONS (\n  uris = [%s],\n  format = 'ICEBERG'\n);\n\n",
		ref, strings.Join(cols, ",\n"), cfg.ConnectionID, strings.Join(uris, ",\n    "))
}

// columnType renders a field type, wrapping repeated fields in ARRAY<>.
func columnType(field *bq.FieldSchema) string {
	if field.Repeated {
		return fmt.Sprintf("ARRAY<%s>", field.Type)
	}
	return string(field.Type)
}

// SerializeValue renders a BigQuery value as a SQL literal for the
// example INSERT statements.
func SerializeValue(v bq.Value) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + escapeString(val) + "'"
	case []byte:
		return "b'" + escapeString(string(val)) + "'"
	case civil.Date:
		return "'" + val.String() + "'"
	case civil.Time:
		return "'" + val.String() + "'"
	case civil.DateTime:
		return "'" + val.String() + "'"
	case time.Time:
		return "'" + val.UTC().Format("2006-01-02 15:04:05") + "'"
	case *big.Rat:
		return val.FloatString(9)
	case []bq.Value:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, SerializeValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]bq.Value:
		// Struct fields serialize in key order for determinism.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, SerializeValue(val[k]))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}
