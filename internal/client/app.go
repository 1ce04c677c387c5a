package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-algo-wallet/internal/adapter"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/tui"
	"github.com/MKhiriev/go-algo-wallet/internal/utils"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type App struct {
	daemon   adapter.DaemonAdapter
	tui      *tui.TUI
	windowID string
}

func NewApp() (*App, error) {
	daemonURL := getenv("WALLET_DAEMON_URL", "http://127.0.0.1:8547")

	daemon := adapter.NewHTTPDaemonAdapter(adapter.HTTPClientConfig{
		BaseURL: daemonURL,
	})

	// the window id doubles as the notification surface id
	windowID := utils.NewUUIDGenerator().Generate()

	shell, err := tui.New(daemon, windowID, logger.Nop())
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{daemon: daemon, tui: shell, windowID: windowID}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	// Register as the wallet's main window so the daemon announces new
	// pending events here instead of asking for prompt windows.
	if err := a.daemon.RegisterWindow(ctx, a.windowID, models.WindowKindMain); err != nil {
		return fmt.Errorf("register main window: %w", err)
	}
	defer func() {
		if err := a.daemon.ReportWindowClosed(context.Background(), a.windowID); err != nil {
			fmt.Fprintf(os.Stderr, "report window closed: %v\n", err)
		}
	}()

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}

	return nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
