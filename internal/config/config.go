// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Default runtime settings. With no flags and no environment the tool loads
// config/config.json and writes processed_json.json to the working directory.
const (
	DefaultInputPath  = "config/config.json"
	DefaultOutputDir  = "."
	DefaultOutputFile = "processed_json.json"
)

// Settings holds the tool's own runtime knobs, as opposed to the config
// document it processes. Values are merged from environment variables,
// command-line flags, and built-in defaults.
//
// Struct tags:
//   - env — direct environment variable name (caarlos0/env).
type Settings struct {
	// InputPath is the JSON config file to deserialize.
	// Env: CONFIG
	InputPath string `env:"CONFIG"`

	// OutputDir is the existing directory the serialized config is
	// written into.
	// Env: OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// OutputFile is the bare filename of the serialized config, placed
	// under OutputDir.
	// Env: OUTPUT_FILE
	OutputFile string `env:"OUTPUT_FILE"`

	// Debug enables debug-level console logging.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`
}

// GetSettings loads and merges the runtime settings from all available
// sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// Returns fully populated *Settings or an error if any source fails to load
// or the final settings fail validation.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}

// validate checks the merged settings before they are used at startup.
func (s *Settings) validate() error {
	if strings.ContainsAny(s.OutputFile, `/\`) {
		return ErrInvalidOutputFile
	}

	return nil
}
