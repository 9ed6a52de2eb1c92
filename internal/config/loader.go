package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load resolves the effective configuration by layering, in order:
//
//  1. the built-in defaults,
//  2. any caller-supplied overlays,
//  3. the YAML file named by the PORTAL_CONFIG environment variable,
//  4. the deployment-mode overlay selected by APPLICATION_MODE
//     (DEVELOPMENT when unset).
//
// Each later source overwrites any key set by an earlier one. An unset
// environment variable means the source is absent, not an error; a set
// PORTAL_CONFIG pointing at an unreadable or malformed file is an error.
func Load(overlays ...Overlay) (*Config, error) {
	cfg := Default()

	for _, o := range overlays {
		o.Apply(cfg)
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		fileOverlay, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		fileOverlay.Apply(cfg)
	}

	mode := ResolveMode(os.Getenv(EnvApplicationMode))
	modes[mode].Apply(cfg)
	cfg.Mode = mode

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads a YAML overlay from disk, expanding ${VAR} references from
// the environment before parsing.
func loadFile(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var o Overlay
	if err := yaml.Unmarshal([]byte(expanded), &o); err != nil {
		return Overlay{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return o, nil
}

func (c *Config) validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Database.Enabled {
		if c.Database.Driver == "" {
			return fmt.Errorf("database driver is required when the database is enabled")
		}
		if c.Database.DSN == "" {
			return fmt.Errorf("database dsn is required when the database is enabled")
		}
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}
