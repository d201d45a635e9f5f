package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ascii", cfg.Encoding)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ActiveDates)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "utf-8 encoding",
			config:  &Config{Encoding: "utf-8", LogLevel: "debug"},
			wantErr: false,
		},
		{
			name:    "empty log level",
			config:  &Config{Encoding: "ascii"},
			wantErr: false,
		},
		{
			name:    "unknown encoding",
			config:  &Config{Encoding: "klingon", LogLevel: "warn"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			config:  &Config{Encoding: "ascii", LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nested", "config.yaml")

	originalConfigPath := ConfigPath
	ConfigPath = func() string { return testConfigPath }
	defer func() { ConfigPath = originalConfigPath }()

	cfg := &Config{
		Encoding:    "utf-8",
		DateFormat:  "%d.%m.%Y",
		ActiveDates: true,
		AutoName:    true,
		LogLevel:    "debug",
	}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("date_format: \"%Y/%m/%d\"\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%Y/%m/%d", cfg.DateFormat)
	assert.Equal(t, "ascii", cfg.Encoding)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("encoding: [not, a, string]\n"), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("encoding: klingon\n"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
