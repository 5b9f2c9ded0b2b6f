package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Relay: Relay{ServerAddress: "relay.local"}},
		&StructuredConfig{Relay: Relay{RoomID: "room-1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "relay.local", cfg.Relay.ServerAddress)
	assert.Equal(t, "room-1", cfg.Relay.RoomID)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero value wins.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Relay: Relay{ServerAddress: "first", RequestTimeout: time.Second}},
		&StructuredConfig{Relay: Relay{ServerAddress: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Relay.ServerAddress)
	assert.Equal(t, time.Second, cfg.Relay.RequestTimeout)
}

// TestBuild_ExplicitFalseOverridesTrue verifies that pointer toggles let a
// later source switch a direction off.
func TestBuild_ExplicitFalseOverridesTrue(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Upload: Direction{Enabled: ptr(true), Tooltip: ptr(true)}},
		&StructuredConfig{Upload: Direction{Enabled: ptr(false)}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Upload.Enabled)
	assert.False(t, *cfg.Upload.Enabled)
	require.NotNil(t, cfg.Upload.Tooltip)
	assert.True(t, *cfg.Upload.Tooltip)
}

// TestBuild_EmptyTypesKeepEarlierList verifies that an unset list does not
// wipe the defaults.
func TestBuild_EmptyTypesKeepEarlierList(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Download: Direction{Types: []string{"text", "image"}}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "image"}, cfg.Download.Types)
}

// TestBuild_RejectsUnknownType verifies that the merged config is validated.
func TestBuild_RejectsUnknownType(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Upload: Direction{Types: []string{"text", "video"}}},
	)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidDirectionConfigs)
}

// TestBuild_RejectsNegativeSize verifies the size ceiling check.
func TestBuild_RejectsNegativeSize(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Download: Direction{MaxSizeMB: ptr(int64(-1))}},
	)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidDirectionConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_Values verifies the built-in defaults.
func TestWithDefaults_Values(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	for _, d := range []Direction{cfg.Upload, cfg.Download} {
		assert.Equal(t, []string{"text", "rtf", "html"}, d.Types)
		require.NotNil(t, d.Enabled)
		assert.False(t, *d.Enabled)
		require.NotNil(t, d.Tooltip)
		assert.True(t, *d.Tooltip)
		require.NotNil(t, d.MaxSizeMB)
		assert.Zero(t, *d.MaxSizeMB)
	}
	assert.Equal(t, 15*time.Second, cfg.Relay.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Relay.AttachmentTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.ClipboardPollInterval)
	assert.NotEmpty(t, cfg.Storage.SyncDir)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("CLIP_RELAY_SERVER_ADDRESS", "env.relay")
	t.Setenv("CLIP_RELAY_ROOM_ID", "env-room")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.relay", b.configs[0].Relay.ServerAddress)
	assert.Equal(t, "env-room", b.configs[0].Relay.RoomID)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion errors are kept.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("CLIP_RELAY_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse errors are kept.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Relay.ServerAddress = "json.relay"
	payload.Relay.RoomID = "json-room"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.relay", b.configs[1].Relay.ServerAddress)
	assert.Equal(t, "json-room", b.configs[1].Relay.RoomID)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Relay.RoomID = "first"
	last := StructuredJSONConfig{}
	last.Relay.RoomID = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Relay.RoomID)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Relay.Secret = "json-secret"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CLIP_RELAY_SERVER_ADDRESS", "env.relay")
	t.Setenv("CLIP_RELAY_ROOM_ID", "env-room")
	t.Setenv("CLIP_RELAY_SECRET", "env-secret")

	cfg, err := GetStructuredConfig([]string{"-room", "flag-room", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env.relay", cfg.Relay.ServerAddress)
	assert.Equal(t, "flag-room", cfg.Relay.RoomID)
	assert.Equal(t, "json-secret", cfg.Relay.Secret)
	assert.Equal(t, 15*time.Second, cfg.Relay.RequestTimeout)
}
