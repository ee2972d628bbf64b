package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/irdecode/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultName         = "irdecoded"
	DefaultAddr         = ":9300"
	DefaultMaxLineBytes = 64 * 1024
	DefaultLogLevel     = "info"
)

// ServiceConfig configures the HTTP decode service.
type ServiceConfig struct {
	Name         string    `toml:"name"`
	Addr         string    `toml:"addr"`
	CorsOrigins  []string  `toml:"cors_origins"`
	AuthToken    string    `toml:"auth_token"`
	MaxLineBytes int       `toml:"max_line_bytes"`
	Log          LogConfig `toml:"log"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:         DefaultName,
		Addr:         DefaultAddr,
		CorsOrigins:  []string{},
		MaxLineBytes: DefaultMaxLineBytes,
		Log:          LogConfig{Level: DefaultLogLevel},
	}
}

// LoadServiceConfig reads path over the defaults and validates the result.
func LoadServiceConfig(path string) (ServiceConfig, error) {
	cfg := DefaultServiceConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ServiceConfig{}, err
	}
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.CorsOrigins = normalizeList(cfg.CorsOrigins)
	if err := ValidateServiceConfig(cfg); err != nil {
		return ServiceConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServiceConfig(cfg ServiceConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("service config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("service config missing addr")
	}
	if cfg.MaxLineBytes <= 0 {
		return fmt.Errorf("service config max_line_bytes must be positive, got %d", cfg.MaxLineBytes)
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("service config log.level unknown: %q", cfg.Log.Level)
	}
	for i, origin := range cfg.CorsOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors_origins[%d] must be an http(s) origin: %q", i, origin)
		}
	}
	return nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
