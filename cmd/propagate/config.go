package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "propagate.yaml"

// config is the content of the config file. Flags override it.
//
//	# propagate.yaml
//	tags: integration
//	tests: true
//	output: propagate_gen.go
//	color: never
//	patterns:
//	  - ./...
type config struct {
	Tags     string   `yaml:"tags"`
	Tests    bool     `yaml:"tests"`
	Output   string   `yaml:"output"`
	Color    string   `yaml:"color"`
	Patterns []string `yaml:"patterns"`
}

// loadConfig reads a config file. A missing file is not an error unless
// required is true.
func loadConfig(path string, required bool) (config, error) {
	var cfg config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig merges the config file and the flags.
func resolveConfig(cmd *cobra.Command, wd string) (config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := cmd.Flags().Changed("config")
	if !filepath.IsAbs(path) {
		path = filepath.Join(wd, path)
	}

	cfg, err := loadConfig(path, required)
	if err != nil {
		return cfg, err
	}

	if s, ok := changedString(cmd, "tags"); ok || cfg.Tags == "" {
		cfg.Tags = s
	}
	if b, ok := changedBool(cmd, "tests"); ok {
		cfg.Tests = b
	}
	if s, ok := changedString(cmd, "output"); ok || cfg.Output == "" {
		cfg.Output = s
	}
	if s, ok := changedString(cmd, "color"); ok || cfg.Color == "" {
		cfg.Color = s
	}
	if cfg.Output == "" {
		cfg.Output = "propagate_gen.go"
	}
	return cfg, nil
}

// changedString returns the value of a string flag. ok is true if the flag is
// set explicitly.
func changedString(cmd *cobra.Command, name string) (string, bool) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return "", false
	}
	return f.Value.String(), f.Changed
}

// changedBool returns the value of a bool flag. ok is true if the flag is set
// explicitly.
func changedBool(cmd *cobra.Command, name string) (bool, bool) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return false, false
	}
	b, err := cmd.Flags().GetBool(name)
	return b, err == nil
}
