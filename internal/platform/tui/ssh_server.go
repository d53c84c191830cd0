package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/datachomps/stabilizer/internal/core"
	"github.com/datachomps/stabilizer/internal/games/stabilizer"
	"github.com/datachomps/stabilizer/internal/labels"
	"github.com/datachomps/stabilizer/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.stabilizer/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Settings are the game rules every session plays with.
	Settings stabilizer.Settings

	// Locale is the language new sessions start in.
	Locale labels.Locale

	// TickRate is the refresh rate of each session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Settings:    stabilizer.DefaultSettings(),
		Locale:      labels.Default,
		TickRate:    60,
	}
}

// storeKey is the ssh.Context key of a connection's run store.
type storeKey struct{}

// SSHServer wraps a Wish SSH server. Every connection plays its own
// independent game with its own in-memory scoreboard.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	labels labels.Set
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stabilizer-ssh",
	})

	set, err := labels.Load(cfg.Locale)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		labels: set,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".stabilizer", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middleware runs last to first: logging, then the store, then the game
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.storeMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	store, _ := sshSession.Context().Value(storeKey{}).(*storage.Store)

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	game := stabilizer.New(s.config.Settings, s.labels)
	model := NewModel(game, store, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// storeMiddleware gives the connection a fresh in-memory run store and
// discards it when the connection ends.
func (s *SSHServer) storeMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		store, err := storage.Open()
		if err != nil {
			s.logger.Warn("could not open session store", "user", sshSession.User(), "error", err)
			next(sshSession)
			return
		}
		defer store.Close()

		sshSession.Context().SetValue(storeKey{}, store)
		next(sshSession)

		if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
			s.logger.Info("session summary",
				"user", sshSession.User(),
				"runs", stats.Runs,
				"high_score", stats.HighScore,
				"lines", stats.TotalLines,
			)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
