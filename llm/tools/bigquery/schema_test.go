package bigquery

import (
	"math/big"
	"testing"
	"time"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestSerializeValue(t *testing.T) {
	tests := []struct {
		name string
		in   bq.Value
		want string
	}{
		{"nil", nil, "NULL"},
		{"string", "promo", "'promo'"},
		{"string with quote", "it's", "'it''s'"},
		{"bytes", []byte("ab"), "b'ab'"},
		{"int", int64(42), "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"date", civil.Date{Year: 2025, Month: 8, Day: 1}, "'2025-08-01'"},
		{"timestamp", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC), "'2025-08-01 09:00:00'"},
		{"numeric", big.NewRat(5, 2), "2.500000000"},
		{"array", []bq.Value{int64(1), "a"}, "[1, 'a']"},
		{"struct sorted by key", map[string]bq.Value{"b": int64(2), "a": int64(1)}, "(1, 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SerializeValue(tt.in))
		})
	}
}

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeString(`a\b`))
	assert.Equal(t, "d''Or", escapeString("d'Or"))
}
