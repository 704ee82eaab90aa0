// Command solace is a terminal client for the Solace wellness companion.
//
// Usage:
//
//	SOLACE_ADDR=https://... SOLACE_TOKEN=... solace [flags]
//
// Flags:
//
//	-addr string   Service base URL (overrides SOLACE_ADDR)
//	-token string  API token (overrides SOLACE_TOKEN)
//	-log string    Path to debug log file (disabled if omitted)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/solace-dev/solace"
	bt "github.com/solace-dev/solace/bubbletea"
	"github.com/solace-dev/solace/cache"
	"github.com/solace-dev/solace/chat"
	"github.com/solace-dev/solace/crisis"
	"github.com/solace-dev/solace/rest"
)

const connectTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "solace: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		addr    = flag.String("addr", "", "Service base URL (overrides SOLACE_ADDR)")
		token   = flag.String("token", "", "API token (overrides SOLACE_TOKEN)")
		logPath = flag.String("log", "", "Path to debug log file (disabled if omitted)")
	)
	flag.Parse()

	if *addr == "" {
		*addr = os.Getenv("SOLACE_ADDR")
	}
	if *token == "" {
		*token = os.Getenv("SOLACE_TOKEN")
	}
	if *addr == "" {
		return fmt.Errorf("no service address: set -addr or SOLACE_ADDR")
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Connect to the service before putting up the UI.
	backend := rest.New(*addr, *token)
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := backend.Connect(connectCtx); err != nil {
		return fmt.Errorf("connect to %s: %w", *addr, err)
	}

	// Cache coordinator with the remote reads the UI consumes.
	store := cache.New(cache.WithLogger(logger))
	store.Register(cache.KeyActiveAlerts, func(ctx context.Context) (any, error) {
		return backend.GetActiveRiskAlerts(ctx)
	})
	store.Register(cache.KeyMoodTrend, func(ctx context.Context) (any, error) {
		return backend.GetMoodTrend(ctx)
	})
	store.Register(cache.KeyCopingTools, func(ctx context.Context) (any, error) {
		return backend.ListCopingTools(ctx)
	})
	store.Register(cache.KeyUserProfile, func(ctx context.Context) (any, error) {
		return backend.GetUserProfile(ctx)
	})

	monitor := crisis.NewMonitor()
	sessions := chat.NewSessionManager(backend, logger)
	conv := chat.NewOrchestrator(backend, sessions, store, monitor, logger)

	// Background polling keeps the active alerts fresh.
	go store.RunAlertRefresh(ctx)

	tui := bt.New(backend, conv, store, monitor, solace.DefaultTheme())
	if err := bt.Run(ctx, tui); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	// Close the session best-effort on the way out.
	endCtx, endCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer endCancel()
	conv.EndSession(endCtx)

	return nil
}

// newLogger opens a debug logger writing to path, or a discard logger when
// path is empty. Logging to stderr would corrupt the TUI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
