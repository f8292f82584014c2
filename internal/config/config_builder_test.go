// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
// are merged and that the first non-zero value wins.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Practitioner: "Dr. X"}},
		&StructuredConfig{App: App{Practitioner: "Dr. Y", Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "Dr. X", cfg.App.Practitioner)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

func TestWithOverrides_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withOverrides(nil))
	assert.Empty(t, b.configs)
}

func TestWithOverrides_WinOverDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().
		withOverrides(&StructuredConfig{Transfer: Transfer{ChunkSize: 7}}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Transfer.ChunkSize)
	assert.Equal(t, int64(DefaultMaxDocumentSize), cfg.Transfer.MaxDocumentSize)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_PRACTITIONER": "env-practitioner",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-practitioner", b.configs[0].App.Practitioner)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a parse failure is recorded
// and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "later"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilArgsSkipped verifies that cobra binaries, which pass no
// arguments, do not parse the standard flag set.
func TestWithFlags_NilArgsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsParsed(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-practitioner", "Dr. Z"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "Dr. Z", b.configs[0].App.Practitioner)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Session.HeartbeatTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 5*time.Second, b.configs[1].Session.HeartbeatTimeout)
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

// TestWithJSON_UsesFirstPath verifies that the path from the highest-priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first-wins"
	second := StructuredJSONConfig{}
	second.App.Version = "ignored"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first-wins", b.configs[3].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies overrides > env > flags > json >
// defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Practitioner = "json"
	payload.App.Version = "json"
	payload.App.LogLevel = "json"
	payload.Server.HTTPAddress = "json"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":           path,
		"APP_PRACTITIONER": "env",
		"APP_LOG_LEVEL":    "env",
	})

	cfg, err := GetStructuredConfig(Sources{
		Args:      []string{"-practitioner", "flag", "-a", "127.0.0.1:1"},
		Overrides: &StructuredConfig{App: App{LogLevel: "override"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.App.LogLevel)
	assert.Equal(t, "env", cfg.App.Practitioner)
	assert.Equal(t, "127.0.0.1:1", cfg.Server.HTTPAddress)
	assert.Equal(t, "json", cfg.App.Version)
	assert.Equal(t, DefaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultChunkSize, cfg.Transfer.ChunkSize)
}
