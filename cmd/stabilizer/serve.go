package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/datachomps/stabilizer/internal/games/stabilizer"
	"github.com/datachomps/stabilizer/internal/labels"
	"github.com/datachomps/stabilizer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stabilizer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Every SSH connection plays its own independent game. Scores live only as
long as the connection; nothing is shared between players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.stabilizer/host_key

Examples:
  stabilizer serve                           # Listen on :23234 with auto-generated key
  stabilizer serve --ssh :2222               # Listen on port 2222
  stabilizer serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	locale, err := labels.Parse(cfg.Display.Locale)
	if err != nil {
		fatal("%v", err)
	}

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Settings:    stabilizer.SettingsFromConfig(cfg),
		Locale:      locale,
		TickRate:    cfg.Display.TickRate,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting stabilizer SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
