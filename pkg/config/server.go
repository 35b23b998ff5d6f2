package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = "8080"
	DefaultMaxRequestBytes = 64 * 1024 * 1024
	DefaultLogLevel        = "info"
)

type ServerConfig struct {
	Port                string `yaml:"port"`
	MaxRequestBytes     int64  `yaml:"max_request_bytes"`
	LogLevel            string `yaml:"log_level"`
	RequireUncompressed bool   `yaml:"require_uncompressed"`
}

// LoadServerConfig reads a YAML server config. An empty path yields the defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	var c ServerConfig
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("reading server config: %w", err)
		}
		if err = yaml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("parsing server config %s: %w", path, err)
		}
	}
	c.PopulateUnsetConfigVars()
	return c, nil
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.MaxRequestBytes < 1 {
		c.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c ServerConfig) StegoConfig() StegoConfig {
	return StegoConfig{RequireUncompressed: c.RequireUncompressed}
}

// SlogLevel maps log_level to a slog level, falling back to info for unknown names
func (c ServerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
