package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "datafile.csv", cfg.Input.File)
	assert.Equal(t, "split_output", cfg.Split.OutputDir)
	assert.Equal(t, 300, cfg.Split.ChunkSize)
	assert.Equal(t, "datafile_{key}_{index}", cfg.Split.NamePattern)
	assert.Equal(t, "csv", cfg.Split.Format)
	assert.False(t, cfg.Split.BOM)
	assert.Equal(t, "sequential", cfg.Split.Mode)
	assert.Equal(t, 0, cfg.Split.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "process.log", cfg.Logging.FilePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CSVSPLIT_SPLIT_CHUNK_SIZE", "50")
	t.Setenv("CSVSPLIT_SPLIT_MODE", "concurrent")
	t.Setenv("CSVSPLIT_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Split.ChunkSize)
	assert.Equal(t, "concurrent", cfg.Split.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromYAMLFile(t *testing.T) {
	content := `split:
  output_dir: custom_out
  chunk_size: 25
  format: xlsx
  bom: true
logging:
  level: warn
`
	path := filepath.Join(t.TempDir(), "csvsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom_out", cfg.Split.OutputDir)
	assert.Equal(t, 25, cfg.Split.ChunkSize)
	assert.Equal(t, "xlsx", cfg.Split.Format)
	assert.True(t, cfg.Split.BOM)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched settings keep their defaults.
	assert.Equal(t, "datafile_{key}_{index}", cfg.Split.NamePattern)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		cfg.Split.Column = "city"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid by column name", mutate: func(c *Config) {}, wantErr: false},
		{name: "valid by column index", mutate: func(c *Config) {
			c.Split.Column = ""
			c.Split.ColumnIndex = 2
		}, wantErr: false},
		{name: "no column selector", mutate: func(c *Config) {
			c.Split.Column = ""
		}, wantErr: true},
		{name: "both column selectors", mutate: func(c *Config) {
			c.Split.ColumnIndex = 1
		}, wantErr: true},
		{name: "zero chunk size", mutate: func(c *Config) {
			c.Split.ChunkSize = 0
		}, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) {
			c.Split.Workers = -2
		}, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) {
			c.Split.Format = "parquet"
		}, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) {
			c.Split.Mode = "fast"
		}, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) {
			c.Logging.Level = "loud"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
