package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pingpong/host_key.
	HostKeyPath string

	// DBPath is the path to the match history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Mode is preselected in each session's mode picker.
	Mode pong.Mode

	// Tuning holds the arena and physics constants.
	Tuning config.PongConfig

	// TickRate overrides the tuning tick interval when non-zero.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.pingpong/history.db",
		IdleTimeout: 30 * time.Minute,
		Mode:        pong.ModeSinglePlayer,
		Tuning:      config.DefaultPongConfig(),
	}
}

// SSHServer wraps a Wish SSH server that hosts one match per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	// Match slots of live sessions, keyed by ssh.Session
	sessions sync.Map
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pingpong-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pingpong", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.recordingMiddleware,
		),
	}

	// Create the server
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

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	slot := &atomic.Pointer[Model]{}
	s.sessions.Store(sshSession, slot)

	model := NewSessionModel(Options{
		Mode:    s.config.Mode,
		Tuning:  s.config.Tuning,
		Runtime: core.RuntimeConfig{TickRate: s.config.TickRate, Seed: time.Now().UnixNano()},
		Width:   pty.Window.Width,
		Height:  pty.Window.Height,
		Logger:  s.logger.With("user", sshSession.User()),
	}, slot)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// recordingMiddleware logs SSH session events and stores the finished match.
func (s *SSHServer) recordingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		v, ok := s.sessions.LoadAndDelete(sshSession)
		if !ok {
			return
		}
		game := v.(*atomic.Pointer[Model]).Load() //nolint:forcetypeassert // only teaHandler stores here
		if game == nil {
			s.logger.Info("session ended before a match started", "user", sshSession.User())
			return
		}

		record := game.Record(sshSession.User())
		if err := s.store.RecordMatch(record); err != nil {
			s.logger.Warn("could not save match", "user", sshSession.User(), "error", err)
		}

		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"mode", record.Mode,
			"score", game.Engine().Score(),
			"ticks", record.Ticks,
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "mode", s.config.Mode)

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

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel is the top-level model of an SSH session: a mode picker
// followed by a match.
type SessionModel struct {
	opts Options
	menu MenuModel
	game *Model
	slot *atomic.Pointer[Model] // Publishes the match for recording
}

// NewSessionModel creates a session that starts at the mode picker.
func NewSessionModel(opts Options, slot *atomic.Pointer[Model]) SessionModel {
	if slot == nil {
		slot = &atomic.Pointer[Model]{}
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Mode, opts.Width, opts.Height),
		slot: slot,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the picker or the running match.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	if m.game != nil {
		next, cmd := m.game.Update(msg)
		if game, ok := next.(Model); ok {
			m.game = &game
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		return m, tea.Quit
	}

	// The picker's own quit command is dropped; the match takes over.
	if mode, ok := m.menu.Selected(); ok {
		m.opts.Mode = mode
		game := NewModel(m.opts)
		m.game = &game
		m.slot.Store(&game)
		m.opts.logInfo("match started", "mode", mode)
		return m, game.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Game returns the running match, or nil while the picker is shown.
func (m SessionModel) Game() *Model {
	return m.game
}
