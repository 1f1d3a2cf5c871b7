// Package config assembles the application configuration from the
// environment, optionally overlaid with a YAML file named by
// CONFIG_FILE. Environment variables win over YAML so deployments can
// override single values without editing the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgcfg "conduit/pkg/config"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Version string       `yaml:"version"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Version: "dev",
	}
}

// Load builds the configuration: defaults, then the optional YAML file,
// then environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("Load: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("Load: parse %s: %w", path, err)
		}
	}

	cfg.Server.Addr = pkgcfg.GetEnvString("HTTP_ADDR", cfg.Server.Addr)
	cfg.Server.ReadHeaderTimeout = pkgcfg.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", cfg.Server.ReadHeaderTimeout)
	cfg.Server.RequestTimeout = pkgcfg.GetEnvDuration("HTTP_REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	cfg.Server.ShutdownTimeout = pkgcfg.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Server.MaxBodyBytes = int64(pkgcfg.GetEnvInt("HTTP_MAX_BODY_BYTES", int(cfg.Server.MaxBodyBytes)))
	cfg.Version = pkgcfg.GetEnvString("VERSION", cfg.Version)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("validate: server addr must not be empty")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("validate: request timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("validate: max body bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
