package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the optional config file. Flags always
// win over config values.
type Config struct {
	// Gs is the default ghostscript executable path.
	Gs string `yaml:"gs,omitempty"`
	// Format is the default output format for the drivers command.
	Format string `yaml:"format,omitempty"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color,omitempty"`
}

var config Config

// loadConfig reads the config file into the package config. An explicit
// --config path must exist; the implicit ~/.psconvert.yaml may be absent.
func loadConfig(path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".psconvert.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	logger.Debugf("loaded config from %s", path)
	return nil
}
