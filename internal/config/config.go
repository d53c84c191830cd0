// Package config provides YAML-based configuration loading for the
// stabilizer game, with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// StabilizerConfig contains all configuration for the stabilizer game.
type StabilizerConfig struct {
	Board    BoardConfig       `yaml:"board"`
	Gameplay GameplayConfig    `yaml:"gameplay"`
	Display  DisplayConfig     `yaml:"display"`
	Pieces   map[string]string `yaml:"pieces"` // kind letter -> colour token
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines the fixed rules of a game.
type GameplayConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
	PointsPerLine  int `yaml:"points_per_line"`
}

// DropInterval returns the gravity interval as a duration.
func (g GameplayConfig) DropInterval() time.Duration {
	return time.Duration(g.DropIntervalMS) * time.Millisecond
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`
	TickRate int    `yaml:"tick_rate"` // refresh ticks per second
}

// Minimum board size that still fits every piece at the spawn column.
// The widest template is 4 cells wide and spawns at column W/2-1, so
// W/2+3 <= W requires at least 5 columns.
const (
	minBoardWidth  = 5
	minBoardHeight = 4
)

// Validate reports every invalid field of the configuration.
func (c StabilizerConfig) Validate() error {
	var errs []error
	if c.Board.Width < minBoardWidth {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", minBoardWidth, c.Board.Width))
	}
	if c.Board.Height < minBoardHeight {
		errs = append(errs, fmt.Errorf("board.height must be at least %d, got %d", minBoardHeight, c.Board.Height))
	}
	if c.Gameplay.DropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.drop_interval_ms must be positive, got %d", c.Gameplay.DropIntervalMS))
	}
	if c.Gameplay.PointsPerLine < 0 {
		errs = append(errs, fmt.Errorf("gameplay.points_per_line must not be negative, got %d", c.Gameplay.PointsPerLine))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
