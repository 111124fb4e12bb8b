// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ccuctl.toml", `
address = "192.168.1.26"
timeout = "30s"
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.26", cfg.Address)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ccuctl.yaml", `
address: ccu.local
timeout: 1m30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ccu.local", cfg.Address)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "info", cfg.LogLevel, "unset fields keep their defaults")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "ccuctl.json", `{}`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"1h30m", 90 * time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.input))
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, d.Duration)
	}
}
