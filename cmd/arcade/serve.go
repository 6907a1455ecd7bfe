package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/games/blockfall"
	"github.com/tinypulse/arcade/internal/platform/tui"
	"github.com/tinypulse/arcade/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
	flagServeReport string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", blockfall.GameID, "Game every session plays")
	serveCmd.Flags().StringVar(&flagServeReport, "report-url", "", "Also POST finished runs as JSON to this URL")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := requireGame(flagServeGame); err != nil {
		return err
	}

	logger := log.WithPrefix("arcade-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = flagServeGame
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger

	var webhook *web.WebhookReporter
	if flagServeReport != "" {
		webhook = web.NewWebhookReporter(flagServeReport, logger)
		cfg.Reporter = core.ScoreReporter(webhook)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	if webhook != nil {
		webhook.Wait()
	}
	return err
}
