// stabilizer is the DATA_CHOMPS falling-block puzzle for the terminal.
//
// Usage:
//
//	stabilizer               - Play in this terminal (same as "play")
//	stabilizer play          - Play in this terminal
//	stabilizer serve         - Start SSH server for remote play
//	stabilizer autoplay      - Run headless games with a random bot
//	stabilizer labels [lang] - Print a label set
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to custom config YAML
//	--env <path>     - Path to .env file with overrides (default: .env)
//	--lang <en|es>   - Starting language
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datachomps/stabilizer/internal/config"
	"github.com/datachomps/stabilizer/internal/labels"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagEnv    string
	flagLang   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stabilizer",
	Short: "STABILIZER_V01 // DATA_CHOMPS - stack blocks, clear lines",
	Long: `Stabilizer is a falling-block puzzle for the terminal. Pieces drop into
a 10x20 core; complete rows to clear them for points. The game ends when
a new piece has no room to spawn.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  autoplay  - Run headless games with a random bot
  labels    - Print the label set for a language

Examples:
  stabilizer
  stabilizer --lang es
  stabilizer serve --ssh :2222
  stabilizer autoplay --runs 5 --seed 42`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", ".env", "Path to .env file with overrides")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Language: en, es (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(labelsCmd)
}

// loadConfig resolves configuration from files, environment and flags.
func loadConfig() (config.StabilizerConfig, error) {
	cfg, err := config.Load(flagConfig, flagEnv)
	if err != nil {
		return cfg, err
	}
	if flagLang != "" {
		cfg.Display.Locale = flagLang
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

// loadLabels returns the label set for the configured language.
func loadLabels(cfg config.StabilizerConfig) (labels.Set, error) {
	locale, err := labels.Parse(cfg.Display.Locale)
	if err != nil {
		return labels.Set{}, err
	}
	return labels.Load(locale)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
