package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads the configuration named by CONFIG_PATH, falling back to
// ./config.yaml. ENV overrides YAML, which overrides env-default tags.
// A missing fallback file is not an error: ENV and defaults are used alone.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return LoadFile(defaultConfigPath, false)
	}
	return LoadFile(path, true)
}

// LoadFile reads configuration from path. When required is false a missing
// file falls back to ENV and defaults.
func LoadFile(path string, required bool) (*Config, error) {
	cfg := newConfig()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize trims values that are compared or looked up verbatim later.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Identity.Username = strings.TrimSpace(c.Identity.Username)
	c.Seed.AdminUsername = strings.TrimSpace(c.Seed.AdminUsername)
}
