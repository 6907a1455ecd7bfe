package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tinypulse/arcade/internal/platform/web"
	"github.com/tinypulse/arcade/internal/storage"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP score API",
	Long: `Serve the score store over HTTP so host pages can submit and show runs.

Endpoints:
  GET  /api/health
  GET  /api/games
  GET  /api/scores/{game}?limit=N
  GET  /api/scores/{game}/best
  POST /api/scores/{game}

Examples:
  arcade web
  arcade web --http 127.0.0.1:9000 --db ./scores.db`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(store, log.WithPrefix("arcade-web"))
	return server.ListenAndServe(ctx, flagHTTPAddr)
}
