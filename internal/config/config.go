// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitpatch - Gitpatch parses git format-patch series into structured commit records.
It segments mailbox-style patch exports into per-commit sections and exposes them as JSON, YAML or Markdown.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config holds gitpatch configuration.
//
// Values are layered: defaults, then the YAML config file, then environment
// variables (the process environment wins over a .env file), then CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/gitpatch/internal/patch"
	"github.com/bartekus/gitpatch/internal/report"
)

const (
	DefaultPath       = ".gitpatch.yaml"
	DefaultDotEnvPath = ".env"

	EnvPolicy = "GITPATCH_POLICY"
	EnvFormat = "GITPATCH_FORMAT"
	EnvOutput = "GITPATCH_OUTPUT"
)

// Config holds application configuration
type Config struct {
	Policy string `yaml:"policy"`
	Format string `yaml:"format"`
	// Output is a file path; empty means stdout.
	Output string `yaml:"output"`
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Default returns default configuration
func Default() *Config {
	return &Config{
		Policy: patch.PolicyStrict.String(),
		Format: string(report.FormatJSON),
	}
}

// Load reads the YAML file at path over the defaults. A missing file is only
// an error when optional is false.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // G304: config path comes from the command line
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}

// EnvLookup returns a lookup over the process environment, falling back to the
// values of the dotenv file at path. A missing dotenv file is fine.
func EnvLookup(path string) (LookupFunc, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		values = nil
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from GITPATCH_* variables. Empty values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		return
	}
	if v, ok := lookup(EnvPolicy); ok && v != "" {
		c.Policy = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}
}

// Validate rejects unknown policy and format names.
func (c *Config) Validate() error {
	if _, err := patch.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParsedPolicy returns the configured policy.
func (c *Config) ParsedPolicy() (patch.Policy, error) {
	return patch.ParsePolicy(c.Policy)
}

// ParsedFormat returns the configured format.
func (c *Config) ParsedFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
