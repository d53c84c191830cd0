package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg StabilizerConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultStabilizerConfig(), cfg)
}

func TestDefaultsValid(t *testing.T) {
	cfg := DefaultStabilizerConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800*time.Millisecond, cfg.Gameplay.DropInterval())
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  drop_interval_ms: 250\ndisplay:\n  locale: es\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadStabilizer(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Gameplay.DropIntervalMS)
	assert.Equal(t, "es", cfg.Display.Locale)
	// Untouched fields keep defaults
	assert.Equal(t, 100, cfg.Gameplay.PointsPerLine)
	assert.Equal(t, 10, cfg.Board.Width)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadStabilizer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [1, 2"), 0o600))

	_, err := LoadStabilizer(path)
	require.Error(t, err)
}

func TestApplyEnvMap(t *testing.T) {
	cfg := DefaultStabilizerConfig()
	err := applyEnvMap(&cfg, map[string]string{
		EnvDropInterval:  "500",
		EnvPointsPerLine: "40",
		EnvLocale:        "es",
		EnvTickRate:      "30",
	})
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Gameplay.DropIntervalMS)
	assert.Equal(t, 40, cfg.Gameplay.PointsPerLine)
	assert.Equal(t, "es", cfg.Display.Locale)
	assert.Equal(t, 30, cfg.Display.TickRate)
}

func TestApplyEnvMapRejectsGarbage(t *testing.T) {
	cfg := DefaultStabilizerConfig()
	err := applyEnvMap(&cfg, map[string]string{EnvDropInterval: "fast"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDropInterval)
}

func TestApplyEnvDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STABILIZER_POINTS_PER_LINE=250\n"), 0o600))

	cfg := DefaultStabilizerConfig()
	require.NoError(t, ApplyEnv(&cfg, path))
	assert.Equal(t, 250, cfg.Gameplay.PointsPerLine)
}

func TestApplyEnvProcessWinsOverDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STABILIZER_LOCALE=en\n"), 0o600))
	t.Setenv(EnvLocale, "es")

	cfg := DefaultStabilizerConfig()
	require.NoError(t, ApplyEnv(&cfg, path))
	assert.Equal(t, "es", cfg.Display.Locale)
}

func TestApplyEnvMissingDotenvIsFine(t *testing.T) {
	cfg := DefaultStabilizerConfig()
	require.NoError(t, ApplyEnv(&cfg, filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StabilizerConfig)
	}{
		{"narrow board", func(c *StabilizerConfig) { c.Board.Width = 3 }},
		{"I piece overhangs spawn", func(c *StabilizerConfig) { c.Board.Width = 4 }},
		{"short board", func(c *StabilizerConfig) { c.Board.Height = 0 }},
		{"zero interval", func(c *StabilizerConfig) { c.Gameplay.DropIntervalMS = 0 }},
		{"negative points", func(c *StabilizerConfig) { c.Gameplay.PointsPerLine = -1 }},
		{"zero tick rate", func(c *StabilizerConfig) { c.Display.TickRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStabilizerConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateNarrowestBoard(t *testing.T) {
	cfg := DefaultStabilizerConfig()
	cfg.Board.Width = 5
	cfg.Board.Height = 4
	assert.NoError(t, cfg.Validate())
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 2\n"), 0o600))

	_, err := Load(path, "")
	require.Error(t, err)
}
