// Package config loads and validates the pmatrix.yml configuration file used
// by the Redis-backed stream commands. The pure commands (emit, validate,
// stream) never touch configuration.
package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration unless overridden.
const DefaultPath = "pmatrix.yml"

// Config represents the top-level pmatrix.yml configuration.
type Config struct {
	Version  string        `yaml:"version"`
	Instance string        `yaml:"instance"` // Namespace for all Redis keys
	Emitter  EmitterConfig `yaml:"emitter"`
	Redis    RedisConfig   `yaml:"redis"`
}

// EmitterConfig identifies the emitter that stream operations act on.
type EmitterConfig struct {
	ID   string `yaml:"id"`             // UUID - stable identity for this emitter's stream
	Name string `yaml:"name,omitempty"` // Optional human-readable label
}

// RedisConfig specifies the Redis connection for the stream store.
type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db,omitempty"`
}

// Default returns a configuration with a freshly generated emitter identity,
// suitable for scaffolding a new pmatrix.yml.
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Instance: "default",
		Emitter: EmitterConfig{
			ID:   uuid.New().String(),
			Name: "default",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}
	if c.Instance == "" {
		return fmt.Errorf("instance is required")
	}
	if c.Emitter.ID == "" {
		return fmt.Errorf("emitter.id is required")
	}
	if _, err := uuid.Parse(c.Emitter.ID); err != nil {
		return fmt.Errorf("emitter.id must be a valid UUID: %w", err)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("redis.db must be >= 0, got %d", c.Redis.DB)
	}
	return nil
}

// RedisOptions converts the Redis section into go-redis connection options.
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr: c.Redis.Addr,
		DB:   c.Redis.DB,
	}
}
