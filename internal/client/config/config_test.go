package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerBaseURL)
	assert.Equal(t, "jobdeck.db", cfg.SessionDBPath)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, 500*time.Millisecond, cfg.ChatTypingDelay)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobdeck.yaml")
	data := "server_base_url: https://jobs.example.com\nsession_db_path: /tmp/session.db\nlog_json: true\nchat_typing_delay: 50ms\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://jobs.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/session.db", cfg.SessionDBPath)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 50*time.Millisecond, cfg.ChatTypingDelay)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JOBDECK_SERVER_BASE_URL", "http://api.internal:9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000", cfg.ServerBaseURL)
}
