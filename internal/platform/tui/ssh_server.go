package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/registry"
	"github.com/tinypulse/arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// GameID is the game every session plays.
	GameID string

	// TickRate is the simulation rate per session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Reporter receives finished runs in addition to the score store.
	Reporter core.ScoreReporter

	// Logger defaults to a stderr logger prefixed "arcade-ssh".
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		GameID:      "blockfall",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

type sessionIDKey struct{}

// SSHServer wraps a Wish SSH server that gives each session its own game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	closeOnce sync.Once
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last-to-first, so logging wraps the program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game and Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
		return nil, nil
	}
	sessionID, _ := sshSession.Context().Value(sessionIDKey{}).(string)
	game.SetScoreReporter(s.sessionReporter(sshSession.User(), sessionID))

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	return NewModel(game, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionReporter saves and logs every run finished in one session.
func (s *SSHServer) sessionReporter(user, sessionID string) core.ScoreReporter {
	logRun := core.ReporterFunc(func(r core.Result) {
		s.logger.Info("run finished",
			"user", user,
			"session", sessionID,
			"game", r.GameID,
			"score", r.Score,
			"lines", r.Lines,
		)
	})

	reporters := core.MultiReporter{logRun, s.config.Reporter}
	if s.store != nil {
		reporters = append(reporters, storage.NewReporter(s.store, s.logger))
	}
	return reporters
}

// loggingMiddleware tags each session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, sessionID)

		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"session", sessionID,
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"session", sessionID,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt or
// SIGTERM, or until the listener fails.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the SSH server until ctx is cancelled, then shuts down gracefully.
// A listener failure such as a port already in use is returned immediately.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	s.closeOnce.Do(func() {
		if s.store != nil {
			s.store.Close()
		}
	})
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
