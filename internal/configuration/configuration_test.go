package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig.APIBaseURL, config.APIBaseURL)
	require.Equal(t, defaultConfig.RequestTimeout, config.RequestTimeout)

	// The file was written so the user can edit it.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParseExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cachePath := filepath.Join(dir, "cache", "cache.db")

	written := Config{
		APIBaseURL:     "http://example.com:9999",
		RequestTimeout: 5,
		CachePath:      cachePath,
	}
	bytes, err := json.Marshal(written)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes, 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, written.APIBaseURL, config.APIBaseURL)
	require.Equal(t, cachePath, config.CachePath)

	// The cache directory is created eagerly.
	_, err = os.Stat(filepath.Dir(cachePath))
	require.NoError(t, err)
}

func TestParseRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	_, err := Parse(path)
	require.Error(t, err)
}
