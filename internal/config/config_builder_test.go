package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

// isolateEnv points the dotenv loader at a file that does not exist so a
// developer's local .env never leaks into the tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "none.env"))
	for _, k := range []string{
		"CONFIG", "BROADCAST_BASE_URL", "BROADCAST_USERNAME", "BROADCAST_PASSWORD",
		"BROADCAST_REQUEST_TIMEOUT", "BROADCAST_INSECURE_SKIP_VERIFY", "BROADCAST_CA_BUNDLE",
		"BROADCAST_KEEP_ALIVE",
		"LOG_LEVEL", "QUOTE_FIELDS", "FAKEFEED_TOKEN_SIGN_KEY", "FAKEFEED_ADDRESS",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.json)
	assert.Nil(t, b.env)
	assert.Nil(t, b.flags)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LayerPriority verifies defaults < JSON < env < flags.
func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Feed: Feed{BaseURL: "https://json.example/", Username: "json-user", Password: "json-pass"},
		Log:  Log{Level: "warn"},
	}
	b.env = &StructuredConfig{
		Feed: Feed{Username: "env-user"},
		Log:  Log{Level: "error"},
	}
	b.flags = &StructuredConfig{
		Log:  Log{Level: "debug"},
		Args: []string{"login"},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://json.example/", cfg.Feed.BaseURL)
	assert.Equal(t, "env-user", cfg.Feed.Username)
	assert.Equal(t, "json-pass", cfg.Feed.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"login"}, cfg.Args)
	// Untouched defaults survive.
	assert.Equal(t, 5*time.Minute, cfg.Workers.KeepAliveInterval)
	assert.Equal(t, "localhost:8089", cfg.FakeFeed.Address)
}

func TestBuild_ExplicitFalseOverridesLowerLayers(t *testing.T) {
	off := false
	b := newConfigBuilder().withDefaults()
	b.env = &StructuredConfig{Feed: Feed{KeepAlive: true, InsecureSkipVerify: true}}
	b.flags = &StructuredConfig{}
	b.flagsBools = explicitBools{keepAlive: &off, insecure: &off}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.False(t, cfg.Feed.KeepAlive)
	assert.False(t, cfg.Feed.InsecureSkipVerify)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{Feed: Feed{RequestTimeout: -time.Second}}

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidFeedConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BROADCAST_USERNAME", "env-user")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env-user", b.env.Feed.Username)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BROADCAST_REQUEST_TIMEOUT", "never")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Nil(t, b.flags)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}
	b.flags = &StructuredConfig{}

	assert.Same(t, b, b.withJSON())
	assert.Nil(t, b.json)
	assert.NoError(t, b.err)
}

func TestWithJSON_LoadsFromEnvPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"feed": map[string]any{"username": "json-user"},
	})
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: path}

	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "json-user", b.json.Feed.Username)
}

func TestWithJSON_FlagPathWinsOverEnvPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "warn"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "debug"}})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}

	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "debug", b.json.Log.Level)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")}

	b.withJSON()

	assert.Error(t, b.err)
	assert.Nil(t, b.json)
}

// ── public entry points ───────────────────────────────────────────────────────

func TestGetClientConfig_FromAllSources(t *testing.T) {
	isolateEnv(t)
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"feed": map[string]any{
			"base_url": "https://json.example/",
			"username": "json-user",
			"password": "json-pass",
		},
		"quote": map[string]any{"fields": []string{"ULT"}},
	})
	t.Setenv("CONFIG", jsonPath)
	t.Setenv("BROADCAST_PASSWORD", "env-pass")

	cfg, err := GetClientConfig([]string{"-u", "flag-user", "quote", "PETR4"})
	require.NoError(t, err)

	assert.Equal(t, "https://json.example/", cfg.Feed.BaseURL)
	assert.Equal(t, "flag-user", cfg.Feed.Username)
	assert.Equal(t, "env-pass", cfg.Feed.Password)
	assert.Equal(t, []string{"ULT"}, cfg.Quote.Fields)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, []string{"quote", "PETR4"}, cfg.Args)
}

func TestGetClientConfig_DefaultBaseURL(t *testing.T) {
	isolateEnv(t)

	cfg, err := GetClientConfig([]string{"-u", "alice", "-p", "secret"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Feed.BaseURL)
	assert.Zero(t, cfg.Feed.RequestTimeout)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	isolateEnv(t)

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidFeedConfigs)
}

func TestGetFakeFeedConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("FAKEFEED_TOKEN_SIGN_KEY", "k")

	cfg, err := GetFakeFeedConfig([]string{"-a", "127.0.0.1:9100"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Address)
	assert.Equal(t, "datafeed", cfg.Username)
	assert.Equal(t, "k", cfg.TokenSignKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenDuration)
}

func TestGetFakeFeedConfig_MissingSignKey(t *testing.T) {
	isolateEnv(t)

	_, err := GetFakeFeedConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidFakeFeedConfigs)
}

func TestGetStructuredConfig_FlagFalseBeatsEnvTrue(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BROADCAST_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("BROADCAST_KEEP_ALIVE", "true")

	cfg, err := GetStructuredConfig([]string{"-insecure=false", "-keep-alive=false", "login"})
	require.NoError(t, err)

	assert.False(t, cfg.Feed.InsecureSkipVerify)
	assert.False(t, cfg.Feed.KeepAlive)
	assert.Equal(t, []string{"login"}, cfg.Args)
}

func TestGetStructuredConfig_EnvTrueSurvivesUnsetFlags(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BROADCAST_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("BROADCAST_KEEP_ALIVE", "true")

	cfg, err := GetStructuredConfig([]string{"login"})
	require.NoError(t, err)

	assert.True(t, cfg.Feed.InsecureSkipVerify)
	assert.True(t, cfg.Feed.KeepAlive)
}

func TestGetStructuredConfig_EnvFalseBeatsJSONTrue(t *testing.T) {
	isolateEnv(t)
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"feed": map[string]any{"keep_alive": true, "insecure_skip_verify": true},
	})
	t.Setenv("CONFIG", jsonPath)
	t.Setenv("BROADCAST_INSECURE_SKIP_VERIFY", "false")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.False(t, cfg.Feed.InsecureSkipVerify)
	assert.True(t, cfg.Feed.KeepAlive)
}
