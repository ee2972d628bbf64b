package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/irdecode/internal/testutil/testlog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServiceConfigTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "irdecoded.toml")
	require.NoError(t, WriteTemplate(path, "service", false))

	cfg, err := LoadServiceConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "irdecoded", cfg.Name)
	assert.Equal(t, ":9300", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CorsOrigins)
	assert.Empty(t, cfg.AuthToken)
	assert.Equal(t, 65536, cfg.Limits().MaxLineBytes)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestLoadServiceConfigDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadServiceConfig(writeConfig(t, `auth_token = "secret"`))
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultMaxLineBytes, cfg.MaxLineBytes)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Empty(t, cfg.CorsOrigins)
}

func TestLoadServiceConfigOverrides(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadServiceConfig(writeConfig(t, `
name = " ir-lab "
addr = "127.0.0.1:9400"
cors_origins = [" https://ir.example ", ""]
max_line_bytes = 1024

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, "ir-lab", cfg.Name)
	assert.Equal(t, "127.0.0.1:9400", cfg.Addr)
	assert.Equal(t, []string{"https://ir.example"}, cfg.CorsOrigins)
	assert.Equal(t, 1024, cfg.Limits().MaxLineBytes)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestLoadServiceConfigRejectsInvalid(t *testing.T) {
	testlog.Start(t)
	tests := map[string]string{
		"empty name":      `name = " "`,
		"bad line limit":  `max_line_bytes = 0`,
		"bad log level":   "[log]\nlevel = \"loud\"",
		"bad cors origin": `cors_origins = ["localhost:3000"]`,
		"not toml":        `name = `,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadServiceConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := LoadServiceConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "")
	assert.Error(t, WriteTemplate(path, "cli", false))
	assert.NoError(t, WriteTemplate(path, "cli", true))

	_, err := Template("bogus")
	assert.Error(t, err)
}
