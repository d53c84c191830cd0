package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/datachomps/stabilizer/internal/core"
	"github.com/datachomps/stabilizer/internal/games/stabilizer"
	"github.com/datachomps/stabilizer/internal/platform/tui"
	"github.com/datachomps/stabilizer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter/Space    - Start
  Left/A Right/D - Move
  Up/W           - Rotate clockwise
  Down/S         - Drop one row
  R              - Restart (after game over)
  L              - Switch language (EN/ES)
  Tab            - Session scoreboard (when not playing)
  Q/Ctrl+C       - Quit

Scores are kept only until you quit.

Examples:
  stabilizer play
  stabilizer play --lang es
  stabilizer play --seed 42 --config ./my-stabilizer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	set, err := loadLabels(cfg)
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		fatal("opening session store: %v", err)
	}
	defer store.Close()

	game := stabilizer.New(stabilizer.SettingsFromConfig(cfg), set)
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, store, runtime); err != nil {
		store.Close()
		fatal("%v", err)
	}
}
