// Package config loads backend configuration from an optional TOML file.
// Command-line flags in cmd/beatvard override whatever is loaded here.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Server contains HTTP listener settings.
type Server struct {
	Port string `toml:"port"`
}

// Storage contains object store settings. When Dir is empty, objects live in
// process memory only.
type Storage struct {
	BaseURL string `toml:"base_url"`
	Dir     string `toml:"dir"`
}

// Catalog contains catalog seed settings. When SeedFile is empty, the
// embedded default catalog is used.
type Catalog struct {
	SeedFile string `toml:"seed_file"`
}

// Logging contains log output settings.
type Logging struct {
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for the Beatvard backend.
type Config struct {
	Server  Server  `toml:"server"`
	Storage Storage `toml:"storage"`
	Catalog Catalog `toml:"catalog"`
	Logging Logging `toml:"logging"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server:  Server{Port: "3001"},
		Storage: Storage{},
		Catalog: Catalog{},
		Logging: Logging{Level: "info"},
	}
}

// Load parses the TOML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("config: server.port must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
