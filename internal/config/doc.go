// Package config provides the configuration for the csvsplit tool. It
// handles loading configuration from multiple sources and validating it
// before anything touches the filesystem.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources in order of
// precedence:
//
//  1. Command-line flags (highest priority)
//  2. YAML configuration file (--config)
//  3. Environment variables
//  4. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CSVSPLIT_* for namespacing:
//
//	CSVSPLIT_INPUT_FILE=datafile.csv
//	CSVSPLIT_SPLIT_CHUNK_SIZE=300
//	CSVSPLIT_SPLIT_MODE=concurrent
//	CSVSPLIT_LOGGING_LEVEL=info
//
// # Validation
//
// Validate checks the fully assembled configuration: struct-tag rules
// (positive chunk size, known mode/format/level) plus cross-field rules
// such as requiring exactly one of column name or column index. The core
// receives the validated Config explicitly and never reads ambient state.
package config
