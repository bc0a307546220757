package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete tool configuration. It is assembled from
// environment variables (prefix CSVSPLIT), an optional YAML file and the
// command-line flags, and handed to the core explicitly; nothing in the
// core reads ambient state.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Split   SplitConfig   `yaml:"split" envconfig:"SPLIT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Analyze bool          `yaml:"analyze" envconfig:"ANALYZE"`
}

// InputConfig locates the input file.
type InputConfig struct {
	File string `yaml:"file" envconfig:"FILE" default:"datafile.csv" validate:"required"`
}

// SplitConfig drives the split engine.
type SplitConfig struct {
	// Column selects the grouping column by name; ColumnIndex selects it by
	// 1-based position. Exactly one of them has to be set.
	Column      string `yaml:"column" envconfig:"COLUMN"`
	ColumnIndex int    `yaml:"column_index" envconfig:"COLUMN_INDEX" validate:"min=0"`
	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"split_output" validate:"required"`
	ChunkSize   int    `yaml:"chunk_size" envconfig:"CHUNK_SIZE" default:"300" validate:"min=1"`
	NamePattern string `yaml:"name_pattern" envconfig:"NAME_PATTERN" default:"datafile_{key}_{index}" validate:"required"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"csv" validate:"oneof=csv xlsx"`
	// BOM prefixes CSV output files with a UTF-8 byte order mark for Excel
	// compatibility. Ignored for xlsx output.
	BOM  bool   `yaml:"bom" envconfig:"BOM"`
	Mode string `yaml:"mode" envconfig:"MODE" default:"sequential" validate:"oneof=sequential concurrent"`
	// Workers bounds the concurrent scheduler; 0 means use the host's
	// available parallelism.
	Workers int `yaml:"workers" envconfig:"WORKERS" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"process.log" validate:"required"`
}

// Load builds the configuration from environment variables, then overlays
// the YAML file at configFile when one is given. Flag overrides are applied
// by the caller afterwards; Validate runs once the full stack is in place.
func Load(configFile string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CSVSPLIT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	return &cfg, nil
}

// Validate checks the assembled configuration against its struct tags plus
// the cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.Split.Column == "" && c.Split.ColumnIndex == 0 {
		return fmt.Errorf("config validation failed: either a column name or a 1-based column index is required")
	}
	if c.Split.Column != "" && c.Split.ColumnIndex != 0 {
		return fmt.Errorf("config validation failed: column name and column index are mutually exclusive")
	}
	return nil
}
