package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env_vars.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvFileStripsQuotes(t *testing.T) {
	path := writeEnvFile(t, `
TEST_ENVFILE_SINGLE='value with spaces'
TEST_ENVFILE_DOUBLE="double quoted"
TEST_ENVFILE_PLAIN=plain
`)
	t.Setenv("TEST_ENVFILE_SINGLE", "")
	t.Setenv("TEST_ENVFILE_DOUBLE", "")
	t.Setenv("TEST_ENVFILE_PLAIN", "")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "value with spaces", os.Getenv("TEST_ENVFILE_SINGLE"))
	assert.Equal(t, "double quoted", os.Getenv("TEST_ENVFILE_DOUBLE"))
	assert.Equal(t, "plain", os.Getenv("TEST_ENVFILE_PLAIN"))
}

func TestLoadEnvFileSkipsCommentsBlanksAndMalformed(t *testing.T) {
	path := writeEnvFile(t, `
# a comment

no_equals_sign_here
TEST_ENVFILE_KEY=ok
`)
	t.Setenv("TEST_ENVFILE_KEY", "")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "ok", os.Getenv("TEST_ENVFILE_KEY"))
	assert.Empty(t, os.Getenv("no_equals_sign_here"))
}

func TestLoadEnvFileMissingFileIsNoError(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.txt")))
}

// unsetEnv clears key for the duration of the test, restoring the
// original value afterwards via t.Setenv's cleanup.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaultsAndFallbacks(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "primary-proj")
	for _, key := range []string{
		"BQ_DATA_PROJECT_ID", "BQ_COMPUTE_PROJECT_ID", "FIRESTORE_PROJECT",
		"RESOURCES_PROJECT", "RESOURCES_LOCATION", "RESOURCE_REGISTRY_FILE",
		"NL2SQL_MAX_ROWS", "GENERIC_MODEL", "ADVANCED_MODEL", "PORT",
	} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.GenericModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.AdvancedModel)
	assert.Equal(t, 80, cfg.BigQuery.MaxRows)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "primary-proj", cfg.BigQuery.ComputeProject)
	assert.Equal(t, "primary-proj", cfg.BigQuery.DataProject)
	assert.Equal(t, "primary-proj", cfg.Firestore.Project)
	assert.Equal(t, "primary-proj", cfg.Resources.Project)
	assert.Equal(t, "us-central1", cfg.Resources.Location)
	assert.Equal(t, "resource_registry.json", cfg.Resources.RegistryObject)
}
