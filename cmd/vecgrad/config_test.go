package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vecgrad/autodiff"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecgrad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []int{1, 2, 3}, cfg.X)
	assert.Equal(t, []int{4, 5, 6}, cfg.Y)
	assert.Equal(t, 1, cfg.Seed)
	assert.Equal(t, "accumulate", cfg.Policy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "x: [0.5, 1.5]\ny: [2, 3]\npolicy: overwrite\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []any{0.5, 1.5}, cfg.X)
	assert.Equal(t, []any{2, 3}, cfg.Y)
	assert.Equal(t, 1, cfg.Seed, "missing keys keep defaults")
	assert.Equal(t, "overwrite", cfg.Policy)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"ragged input", "x: [[1, 2], [3]]\n", autodiff.ErrConstruction},
		{"string input", "y: [a, b]\n", autodiff.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadConfig_UnknownPolicy(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "policy: sideways\n"))
	assert.ErrorContains(t, err, "unknown gradient policy")
}

func TestLoadConfig_BadFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "x: [1, 2\n"))
	assert.Error(t, err)
}

func TestConfig_ValidateNull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = nil
	assert.Error(t, cfg.Validate())
}
