// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the mdreport configuration file into types.Config.
// Loading is fail-fast: a missing file is a user error that aborts the run
// before any output directory is touched. There is no schema validation;
// absent keys surface as zero values in the consuming command.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/mdreport/pkg/types"
)

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = "config.yml"

// EnvPrefix namespaces environment variable overrides.
const EnvPrefix = "MDREPORT"

// Load reads the configuration file at path and unmarshals it into a Config.
// The file must exist; Load returns a not-found error otherwise.
func Load(path string) (types.Config, error) {
	var cfg types.Config

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, fmt.Errorf("checking config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
