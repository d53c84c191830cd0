package config

import (
	_ "embed"
)

//go:embed defaults/stabilizer.yaml
var defaultStabilizerYAML []byte

// DefaultStabilizerConfig returns the default configuration.
func DefaultStabilizerConfig() StabilizerConfig {
	gold := "#c5a059"
	return StabilizerConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gameplay: GameplayConfig{
			DropIntervalMS: 800,
			PointsPerLine:  100,
		},
		Display: DisplayConfig{
			Locale:   "en",
			TickRate: 60,
		},
		Pieces: map[string]string{
			"I": gold, "J": gold, "L": gold, "O": gold,
			"S": gold, "T": gold, "Z": gold,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStabilizerYAML
}
