package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvDropInterval  = "STABILIZER_DROP_INTERVAL_MS"
	EnvPointsPerLine = "STABILIZER_POINTS_PER_LINE"
	EnvLocale        = "STABILIZER_LOCALE"
	EnvTickRate      = "STABILIZER_TICK_RATE"
)

// LoadStabilizer loads the game configuration.
// Search order: customPath -> ~/.stabilizer/configs/stabilizer.yaml -> ./configs/stabilizer.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadStabilizer(customPath string) (StabilizerConfig, error) {
	cfg := DefaultStabilizerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stabilizer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultStabilizerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stabilizer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultStabilizerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStabilizerYAML, &cfg); err != nil {
		return DefaultStabilizerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stabilizer", "configs", filename)
}

// ApplyEnv overrides cfg from the process environment and, when present,
// a dotenv file. Process variables win over the file. A missing dotenv
// file is not an error.
func ApplyEnv(cfg *StabilizerConfig, dotenvPath string) error {
	env := map[string]string{}
	if dotenvPath != "" {
		fileEnv, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to read %s: %w", dotenvPath, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range []string{EnvDropInterval, EnvPointsPerLine, EnvLocale, EnvTickRate} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return applyEnvMap(cfg, env)
}

// applyEnvMap applies the recognised keys of env to cfg.
func applyEnvMap(cfg *StabilizerConfig, env map[string]string) error {
	if v, ok := env[EnvDropInterval]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvDropInterval, err)
		}
		cfg.Gameplay.DropIntervalMS = n
	}
	if v, ok := env[EnvPointsPerLine]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPointsPerLine, err)
		}
		cfg.Gameplay.PointsPerLine = n
	}
	if v, ok := env[EnvTickRate]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTickRate, err)
		}
		cfg.Display.TickRate = n
	}
	if v, ok := env[EnvLocale]; ok && v != "" {
		cfg.Display.Locale = v
	}
	return nil
}

// Load resolves the full configuration: file search, dotenv and
// environment overrides, then validation.
func Load(customPath, dotenvPath string) (StabilizerConfig, error) {
	cfg, err := LoadStabilizer(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, dotenvPath); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
