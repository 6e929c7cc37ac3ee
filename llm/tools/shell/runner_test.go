package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "ls -la /tmp", []string{"ls", "-la", "/tmp"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"single quotes", "echo 'a b c'", []string{"echo", "a b c"}},
		{"quotes join words", `echo foo"bar baz"`, []string{"echo", "foobar baz"}},
		{"escaped space", `echo hello\ world`, []string{"echo", "hello world"}},
		{"double quote keeps single", `echo "it's"`, []string{"echo", "it's"}},
		{"extra whitespace", "  ls   -la\t/tmp ", []string{"ls", "-la", "/tmp"}},
		{"empty quotes make empty arg", `run ""`, []string{"run", ""}},
		{"gcloud flags", `firestore databases create --location=eur3 --project=my-proj`,
			[]string{"firestore", "databases", "create", "--location=eur3", "--project=my-proj"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitWords(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitWordsUnterminatedQuote(t *testing.T) {
	_, err := SplitWords(`echo "unfinished`)
	assert.Error(t, err)

	_, err = SplitWords(`echo trailing\`)
	assert.Error(t, err)
}

func TestSplitWordsEmpty(t *testing.T) {
	got, err := SplitWords("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
