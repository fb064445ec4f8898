// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points LPUSH_CFG at a testdata file and resets the global
// Config so the next access reloads.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv("LPUSH_CFG", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Equal(t, "us-east-1", cfg.Data["region"])
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("LPUSH_CFG", "/nonexistent/path/lpush.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgIsDirectory(t *testing.T) {
	t.Setenv("LPUSH_CFG", "testdata")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "region",
			want:     "us-east-1",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "colors.title",
			want:     "#f6be00",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"fallback"},
			want:         "fallback",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "version",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", testFile: "mixed-types.yaml", key: "version", want: 1},
		{name: "float converted", testFile: "mixed-types.yaml", key: "timeout", want: 30},
		{name: "nested int", testFile: "nested.yaml", key: "deploy.padding", want: 4},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-int value", testFile: "simple.yaml", key: "region", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "mixed-types.yaml")
	_, _ = Load()

	list, err := GetStringSlice("include")
	require.NoError(t, err)
	assert.Equal(t, []string{"handler.py", "modules/**/*.py"}, list)

	// Scalars promote to a single-entry slice.
	single, err := GetStringSlice("single")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.py"}, single)

	_, err = GetStringSlice("missing")
	assert.Error(t, err)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")

	_, err := Load()
	require.NoError(t, err)

	Config.Namespace = "deploy"

	// Namespaced value wins over the bare key miss.
	val, err := Config.get("region")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", val)

	// Bare keys still resolve when the namespace misses.
	val, err = Config.get("colors.even")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", val)
}

func TestConfig_LazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	// No explicit Load; GetString triggers it.
	val, err := GetString("region")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", val)
	assert.NotEmpty(t, Config.Source)
}
