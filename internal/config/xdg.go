package config

import (
	"os"
	"path/filepath"
)

// Dir returns the XDG config directory for torquectl, ~/.config/torquectl
// by default. Respects the XDG_CONFIG_HOME environment variable. The
// directory is created on first use.
func Dir() (string, error) {
	var base string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		base = xdg
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}

	configDir := filepath.Join(base, "torquectl")

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", err
	}

	return configDir, nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
