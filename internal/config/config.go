package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. BALANCER_SERVER_PORT.
const EnvPrefix = "BALANCER_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Session  SessionConfig  `koanf:"session"`
	Log      LogConfig      `koanf:"log"`
	Report   ReportConfig   `koanf:"report"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// SessionConfig sets the closing window. Hours are local to Timezone;
// an empty Timezone means the process local zone.
type SessionConfig struct {
	WindowStartHour int    `koanf:"window_start_hour"`
	WindowEndHour   int    `koanf:"window_end_hour"`
	Timezone        string `koanf:"timezone"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type ReportConfig struct {
	Currency string `koanf:"currency"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":               "9446",
		"database.path":             "data/shop_closing.db",
		"session.window_start_hour": 18,
		"session.window_end_hour":   24,
		"session.timezone":          "",
		"log.level":                 "info",
		"report.currency":           "Kz",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then
// BALANCER_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps BALANCER_SESSION_WINDOW_START_HOUR to session.window_start_hour.
// Only the first underscore separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Validate checks the closing window and the time zone.
func (c *Config) Validate() error {
	s := c.Session
	if s.WindowStartHour < 0 || s.WindowStartHour > 23 {
		return fmt.Errorf("session.window_start_hour must be within 0-23, got %d", s.WindowStartHour)
	}
	if s.WindowEndHour < 0 || s.WindowEndHour > 24 {
		return fmt.Errorf("session.window_end_hour must be within 0-24, got %d", s.WindowEndHour)
	}
	if s.WindowStartHour == s.WindowEndHour {
		return errors.New("session window start and end hours must differ")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	return nil
}

// Location resolves the session time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Session.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Session.Timezone)
	if err != nil {
		return nil, fmt.Errorf("session.timezone: %w", err)
	}
	return loc, nil
}
