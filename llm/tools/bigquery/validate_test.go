package bigquery

import (
	"testing"
	"time"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestIsReadOnly(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		readOnly bool
	}{
		{"plain select", "SELECT id FROM `p.d.t`", true},
		{"delete statement", "DELETE FROM t WHERE id = 1", false},
		{"lowercase update", "update t set x = 1", false},
		{"drop table", "DROP TABLE t", false},
		{"merge", "MERGE INTO t USING s ON t.id = s.id", false},
		{"truncate", "TRUNCATE TABLE t", false},
		{"column named updated_at", "SELECT updated_at FROM `p.d.t`", true},
		{"column named created_at", "SELECT created_at, deleted_flag FROM `p.d.t`", true},
		{"keyword inside identifier", "SELECT last_insertion FROM `p.d.t`", true},
		{"keyword as whole word mid-query", "SELECT 1; INSERT INTO t VALUES (1)", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.readOnly, IsReadOnly(tt.sql))
		})
	}
}

func TestCleanupSQLAppendsSingleLimit(t *testing.T) {
	out := CleanupSQL("SELECT id FROM `p.d.t`", 80)
	assert.Equal(t, "SELECT id FROM `p.d.t` limit 80", out)

	// Exactly one limit clause, even when cleaned twice.
	again := CleanupSQL(out, 80)
	assert.Equal(t, out, again)
}

func TestCleanupSQLKeepsExistingLimit(t *testing.T) {
	sql := "SELECT id FROM `p.d.t` LIMIT 5"
	assert.Equal(t, sql, CleanupSQL(sql, 80))

	lower := "select id from `p.d.t` limit 10"
	assert.Equal(t, lower, CleanupSQL(lower, 80))
}

func TestCleanupSQLUnescapes(t *testing.T) {
	out := CleanupSQL(`SELECT \"name\" FROM t WHERE x = \'y\'\nORDER BY 1`, 80)
	assert.Equal(t, "SELECT \"name\" FROM t WHERE x = 'y'\nORDER BY 1 limit 80", out)
}

func TestFormatValueDates(t *testing.T) {
	d := civil.Date{Year: 2025, Month: time.March, Day: 7}
	assert.Equal(t, "2025-03-07", FormatValue(d))

	dt := civil.DateTime{Date: d, Time: civil.Time{Hour: 12, Minute: 30}}
	assert.Equal(t, "2025-03-07T12:30:00", FormatValue(dt))

	ts := time.Date(2025, 3, 7, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-07T12:30:00Z", FormatValue(ts))
}

func TestFormatValueRecurses(t *testing.T) {
	v := []bq.Value{
		civil.Date{Year: 2024, Month: 1, Day: 2},
		map[string]bq.Value{"when": civil.Date{Year: 2024, Month: 1, Day: 3}},
	}
	out := FormatValue(v)
	assert.Equal(t, []any{"2024-01-02", map[string]any{"when": "2024-01-03"}}, out)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, "SELECT 1", StripCodeFences("```sql\nSELECT 1\n```"))
	assert.Equal(t, "SELECT 1", StripCodeFences("SELECT 1"))
}
