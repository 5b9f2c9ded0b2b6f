package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"relay": {
			"server_address": "https://relay.example.com",
			"room_id": "room-42",
			"secret": "s3cret",
			"request_timeout": "20s",
			"attachment_timeout": "2m"
		},
		"upload": {
			"enabled": true,
			"types": ["text", "image"],
			"max_size_mb": 10,
			"tooltip": false
		},
		"download": {
			"enabled": false
		},
		"storage": { "sync_dir": "/var/sync" },
		"workers": { "clipboard_poll_interval": "750ms" },
		"paste": { "command": "xdotool key ctrl+v" },
		"log": { "level": "warn", "file": "/var/log/clip.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://relay.example.com", cfg.Relay.ServerAddress)
	assert.Equal(t, "room-42", cfg.Relay.RoomID)
	assert.Equal(t, "s3cret", cfg.Relay.Secret)
	assert.Equal(t, 20*time.Second, cfg.Relay.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Relay.AttachmentTimeout)

	require.NotNil(t, cfg.Upload.Enabled)
	assert.True(t, *cfg.Upload.Enabled)
	assert.Equal(t, []string{"text", "image"}, cfg.Upload.Types)
	require.NotNil(t, cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(10), *cfg.Upload.MaxSizeMB)
	require.NotNil(t, cfg.Upload.Tooltip)
	assert.False(t, *cfg.Upload.Tooltip)

	require.NotNil(t, cfg.Download.Enabled)
	assert.False(t, *cfg.Download.Enabled)
	assert.Nil(t, cfg.Download.Tooltip)
	assert.Nil(t, cfg.Download.Types)

	assert.Equal(t, "/var/sync", cfg.Storage.SyncDir)
	assert.Equal(t, 750*time.Millisecond, cfg.Workers.ClipboardPollInterval)
	assert.Equal(t, "xdotool key ctrl+v", cfg.Paste.Command)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/log/clip.log", cfg.Log.File)

	// The JSON file never points at another JSON file.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"relay":{"request_timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Relay.RequestTimeout)
}

func TestParseJSON_CommentsAndTrailingCommas(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.jsonc")
	body := `{
		// relay of the home network
		"relay": {
			"room_id": "living-room", /* shared with the laptop */
		},
		"upload": { "types": ["text", "files",], },
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, "living-room", cfg.Relay.RoomID)
	assert.Equal(t, []string{"text", "files"}, cfg.Upload.Types)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"relay":{"request_timeout":"whenever"}}`), 0o600))

	cfg, err := parseJSON(p)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
