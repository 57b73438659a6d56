package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eoselia/mortgage-engine/internal/config"
	"github.com/eoselia/mortgage-engine/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address   string               `yaml:"address"`
	RedisAddr string               `yaml:"redisAddr"`
	CacheTTL  string               `yaml:"cacheTTL"`
	Logging   config.LoggingConfig `yaml:"logging"`
	cacheTTL  time.Duration
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address: constants.DefaultServerAddress,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CacheTTLDuration returns the configured cache entry lifetime; zero means
// entries never expire.
func (c *Config) CacheTTLDuration() time.Duration {
	return c.cacheTTL
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.CacheTTL != "" {
		ttl, err := time.ParseDuration(c.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cacheTTL %q: %w", c.CacheTTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("cacheTTL must not be negative, got %s", ttl)
		}
		c.cacheTTL = ttl
	}
	return nil
}
