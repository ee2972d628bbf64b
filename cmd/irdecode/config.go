package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/irdecode/internal/protocol/frame"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type cliConfig struct {
	Format string
	Quiet  bool
	Limits frame.Limits
}

type fileConfig struct {
	Format       string `toml:"format"`
	Quiet        bool   `toml:"quiet"`
	MaxLineBytes int    `toml:"max_line_bytes"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Format: formatText,
		Limits: frame.DefaultLimits(),
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load irdecode config: %w", err)
	}

	if meta.IsDefined("format") {
		format, err := parseFormat(raw.Format)
		if err != nil {
			return cliConfig{}, err
		}
		cfg.Format = format
	}

	if meta.IsDefined("quiet") {
		cfg.Quiet = raw.Quiet
	}

	if meta.IsDefined("max_line_bytes") {
		if raw.MaxLineBytes <= 0 {
			return cliConfig{}, fmt.Errorf("max_line_bytes must be positive, got %d", raw.MaxLineBytes)
		}
		cfg.Limits.MaxLineBytes = raw.MaxLineBytes
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	return cfg, nil
}

func parseFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: text, json)", raw)
	}
}
