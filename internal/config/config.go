// Package config loads torquectl configuration from the XDG config file
// and the process environment. Precedence is flag > environment > file >
// built-in default; flags are applied by the command layer, this package
// resolves the rest.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// Environment variables recognized in addition to TORQUE_API_TOKEN.
const (
	EnvAPIURL = "TORQUE_API_URL"
	EnvSpace  = "TORQUE_SPACE"
)

// ErrInvalidConfig is returned when the config file cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the persistent torquectl defaults. Every field is optional;
// commands require the values they need and fail with a usage error when a
// required one is absent from flags, environment, and file alike.
type Config struct {
	// APIURL is the Torque portal base URL.
	APIURL string `yaml:"api_url,omitempty"`

	// Space is the default Torque space.
	Space string `yaml:"space,omitempty"`

	// OwnerEmail is the default owner email for workflow instantiations.
	OwnerEmail string `yaml:"owner_email,omitempty"`

	// RepositoryName is the default workflow repository.
	RepositoryName string `yaml:"repository_name,omitempty"`
}

// Load reads the config file (if present) and overlays environment
// variables. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := Path()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}

	applyEnv(cfg, os.Getenv)
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Split out so tests can
// inject a lookup instead of mutating the process environment.
func applyEnv(cfg *Config, lookup func(string) string) {
	if v := lookup(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := lookup(EnvSpace); v != "" {
		cfg.Space = v
	}
}

// ResolvedAPIURL returns the configured API URL or the built-in default.
func (c *Config) ResolvedAPIURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return torque.DefaultAPIURL
}

// Save writes the config file, creating the config directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
