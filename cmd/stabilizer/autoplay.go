package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/datachomps/stabilizer/internal/games/stabilizer"
	"github.com/datachomps/stabilizer/internal/labels"
	"github.com/datachomps/stabilizer/internal/platform/loop"
	"github.com/datachomps/stabilizer/internal/storage"
)

var (
	flagRuns         int
	flagSpeed        int
	flagDropInterval int
	flagMaxPieces    int
	flagVerbose      bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run headless games with a random bot",
	Long: `Play games without a terminal UI. A bot presses random keys while
gravity runs on a fixed-rate ticker; every finished game is logged and a
summary is printed at the end. Ctrl+C stops early.

Examples:
  stabilizer autoplay
  stabilizer autoplay --runs 10 --seed 42
  stabilizer autoplay --speed 50 --drop-interval 200 -v`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagSpeed, "speed", 20, "Simulated time multiplier")
	autoplayCmd.Flags().IntVar(&flagDropInterval, "drop-interval", 0, "Gravity interval in ms (0 = from config)")
	autoplayCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", 0, "End a game after this many pieces (0 = no limit)")
	autoplayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every locked piece")
}

func runAutoplay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autoplay",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	if flagDropInterval > 0 {
		cfg.Gameplay.DropIntervalMS = flagDropInterval
	}
	locale, err := labels.Parse(cfg.Display.Locale)
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open()
	if err != nil {
		fatal("opening session store: %v", err)
	}
	defer store.Close()

	settings := stabilizer.SettingsFromConfig(cfg)
	session := stabilizer.NewSession(settings, rand.New(rand.NewSource(seed)))
	bot := stabilizer.NewBot(rand.New(rand.NewSource(seed + 1)))
	session.Start()

	logger.Info("starting",
		"seed", seed,
		"runs", flagRuns,
		"board", [2]int{settings.Width, settings.Height},
		"drop_interval", settings.DropInterval,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	speed := time.Duration(max(1, flagSpeed))
	played := 0
	step := func(elapsed time.Duration) bool {
		bot.Act(session)
		if res, dropped := session.Tick(elapsed * speed); dropped && res.Locked {
			logger.Debug("piece locked",
				"cleared", res.Cleared,
				"score", session.Score(),
				"pieces", session.Pieces(),
			)
		}

		capped := flagMaxPieces > 0 && session.Pieces() > flagMaxPieces
		if session.Phase() != stabilizer.PhaseGameOver && !capped {
			return true
		}

		played++
		if _, err := store.SaveRun(storage.Run{
			Score:  session.Score(),
			Lines:  session.Lines(),
			Pieces: session.Pieces(),
			Locale: string(locale),
		}); err != nil {
			logger.Error("could not record run", "error", err)
		}
		logger.Info("run finished",
			"run", played,
			"score", session.Score(),
			"lines", session.Lines(),
			"pieces", session.Pieces(),
			"topped_out", !capped,
		)

		if played >= flagRuns {
			return false
		}
		session.Restart()
		return true
	}

	err = loop.Run(ctx, loop.Period(cfg.Display.TickRate), step)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", "runs_finished", played)
	case err != nil:
		store.Close()
		fatal("%v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		store.Close()
		fatal("%v", err)
	}
	logger.Info("summary",
		"runs", stats.Runs,
		"high_score", stats.HighScore,
		"avg_score", stats.AvgScore,
		"lines", stats.TotalLines,
	)
}
