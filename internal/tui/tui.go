package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-algo-wallet/internal/adapter"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	daemon    adapter.DaemonAdapter
	surfaceID string
}

func New(daemon adapter.DaemonAdapter, surfaceID string, _ *logger.Logger) (*TUI, error) {
	return &TUI{daemon: daemon, surfaceID: surfaceID}, nil
}

// Run blocks in the approval shell until the user quits. Daemon
// notifications are long-polled in the background and fed into the Bubble
// Tea program so that new pending events show up without manual refresh.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newMainLoopModel(ctx, t.daemon)
	program := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for {
			notification, ok, err := t.daemon.PollNotification(ctx, t.surfaceID)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				time.Sleep(time.Second)
				continue
			}
			if !ok {
				continue
			}
			program.Send(notificationMsg{notification: notification})
		}
	}()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
