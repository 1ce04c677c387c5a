// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type eventQueueService struct {
	eventRepository  store.EventRepository
	windowRepository store.WindowRepository
	windowManager    WindowManager
	transport        Transport
	promptGeometry   config.Windows
	now              func() int64

	logger *logger.Logger
}

// NewEventQueueService returns an [EventQueueService] surfacing pending
// events through the given window manager and transport.
func NewEventQueueService(
	storages *store.Storages,
	windowManager WindowManager,
	transport Transport,
	cfg config.Windows,
	logger *logger.Logger,
) EventQueueService {
	return &eventQueueService{
		eventRepository:  storages.Events,
		windowRepository: storages.Windows,
		windowManager:    windowManager,
		transport:        transport,
		promptGeometry:   cfg,
		now:              func() int64 { return time.Now().UnixMilli() },
		logger:           logger,
	}
}

func (e *eventQueueService) Enqueue(ctx context.Context, event models.PendingClientEvent) error {
	_, err := e.eventRepository.GetByID(ctx, event.ID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDuplicateEvent, event.ID)
	case !errors.Is(err, store.ErrEventNotFound):
		return fmt.Errorf("enqueue: %w", err)
	}

	if event.CreatedAt == 0 {
		event.CreatedAt = e.now()
	}

	// Persist before surfacing: a crash between the two leaves a pending
	// event that startup reconciliation can still abandon cleanly, while
	// the reverse order could show a prompt for an event that was never
	// recorded.
	if _, err := e.eventRepository.Save(ctx, event); err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}

	return e.surface(ctx, event)
}

// surface announces the event to an open main window, or opens a dedicated
// prompt window when none is open.
func (e *eventQueueService) surface(ctx context.Context, event models.PendingClientEvent) error {
	hasMain, err := e.hasLiveMainWindow(ctx)
	if err != nil {
		return err
	}

	if hasMain {
		if err := e.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationEventsChanged}); err != nil {
			return fmt.Errorf("announce event: %w", err)
		}

		e.logger.Debug().Str("requestId", event.ID).Msg("pending event announced to main window")

		return nil
	}

	windowID, err := e.windowManager.Open(ctx, models.WindowSpec{
		Kind:   models.WindowKindPrompt,
		Width:  e.promptGeometry.PromptWidth,
		Height: e.promptGeometry.PromptHeight,
		Left:   e.promptGeometry.PromptLeft,
		Top:    e.promptGeometry.PromptTop,
	})
	if err != nil {
		return fmt.Errorf("open prompt window: %w", err)
	}

	_, err = e.windowRepository.Save(ctx, models.AppWindow{
		ID:        windowID,
		Kind:      models.WindowKindPrompt,
		EventID:   event.ID,
		CreatedAt: e.now(),
	})
	if err != nil {
		return fmt.Errorf("record prompt window: %w", err)
	}

	e.logger.Debug().
		Str("requestId", event.ID).
		Str("windowId", windowID).
		Msg("prompt window opened")

	return nil
}

func (e *eventQueueService) hasLiveMainWindow(ctx context.Context) (bool, error) {
	open, err := e.windowManager.OpenWindowIDs(ctx)
	if err != nil {
		return false, fmt.Errorf("list open windows: %w", err)
	}
	live := make(map[string]struct{}, len(open))
	for _, id := range open {
		live[id] = struct{}{}
	}

	recorded, err := e.windowRepository.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("list window records: %w", err)
	}
	for _, window := range recorded {
		if window.Kind != models.WindowKindMain {
			continue
		}
		if _, ok := live[window.ID]; ok {
			return true, nil
		}
	}

	return false, nil
}

func (e *eventQueueService) RegisterWindow(ctx context.Context, windowID, kind string) error {
	if windowID == "" {
		return fmt.Errorf("register window: empty window id")
	}
	if kind != models.WindowKindMain && kind != models.WindowKindPrompt {
		return fmt.Errorf("register window: unknown kind %q", kind)
	}

	_, err := e.windowRepository.Save(ctx, models.AppWindow{
		ID:        windowID,
		Kind:      kind,
		CreatedAt: e.now(),
	})
	if err != nil {
		return fmt.Errorf("register window: %w", err)
	}

	e.logger.Debug().Str("windowId", windowID).Str("kind", kind).Msg("window registered")

	return nil
}

func (e *eventQueueService) GetPending(ctx context.Context) ([]models.PendingClientEvent, error) {
	return e.eventRepository.GetAll(ctx)
}

func (e *eventQueueService) GetByID(ctx context.Context, requestID string) (models.PendingClientEvent, error) {
	event, err := e.eventRepository.GetByID(ctx, requestID)
	switch {
	case errors.Is(err, store.ErrEventNotFound):
		return models.PendingClientEvent{}, fmt.Errorf("%w: %s", ErrEventNotPending, requestID)
	case err != nil:
		return models.PendingClientEvent{}, err
	}

	return event, nil
}

func (e *eventQueueService) Resolve(ctx context.Context, requestID string, response models.ResponseMessage) error {
	event, err := e.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if err := e.transport.Deliver(ctx, event.TabID, response); err != nil {
		return fmt.Errorf("deliver response: %w", err)
	}

	if err := e.eventRepository.RemoveByID(ctx, requestID); err != nil {
		return fmt.Errorf("remove event: %w", err)
	}

	if err := e.closePromptFor(ctx, requestID); err != nil {
		return err
	}

	return e.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationEventsChanged})
}

// closePromptFor closes and forgets the prompt window opened for the given
// event, if one was.
func (e *eventQueueService) closePromptFor(ctx context.Context, requestID string) error {
	recorded, err := e.windowRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list window records: %w", err)
	}

	for _, window := range recorded {
		if window.EventID != requestID {
			continue
		}
		if err := e.windowManager.Close(ctx, window.ID); err != nil {
			e.logger.Warn().Err(err).Str("windowId", window.ID).Msg("closing prompt window failed")
		}
		if err := e.windowRepository.RemoveByID(ctx, window.ID); err != nil {
			return fmt.Errorf("remove window record: %w", err)
		}
	}

	return nil
}

func (e *eventQueueService) HandleWindowClosed(ctx context.Context, windowID string) error {
	window, err := e.windowRepository.GetByID(ctx, windowID)
	switch {
	case errors.Is(err, store.ErrWindowNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("handle window closed: %w", err)
	}

	if err := e.windowRepository.RemoveByID(ctx, windowID); err != nil {
		return fmt.Errorf("remove window record: %w", err)
	}

	if window.EventID == "" {
		return nil
	}

	// Closing the prompt without deciding abandons the request: the entry
	// is purged and the client gets no response.
	if err := e.eventRepository.RemoveByID(ctx, window.EventID); err != nil &&
		!errors.Is(err, store.ErrEventNotFound) {
		return fmt.Errorf("remove abandoned event: %w", err)
	}

	e.logger.Debug().
		Str("requestId", window.EventID).
		Str("windowId", windowID).
		Msg("pending event abandoned by window close")

	return e.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationEventsChanged})
}

func (e *eventQueueService) ReconcileOnStartup(ctx context.Context) error {
	open, err := e.windowManager.OpenWindowIDs(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	live := make(map[string]struct{}, len(open))
	for _, id := range open {
		live[id] = struct{}{}
	}

	recorded, err := e.windowRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	// Events whose surface survived the restart stay queued; everything
	// else is abandoned without a response.
	keep := make(map[string]struct{})
	purgedWindows := 0
	for _, window := range recorded {
		if _, ok := live[window.ID]; ok {
			if window.EventID != "" {
				keep[window.EventID] = struct{}{}
			}
			continue
		}
		if err := e.windowRepository.RemoveByID(ctx, window.ID); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}
		purgedWindows++
	}

	events, err := e.eventRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	purgedEvents := 0
	for _, event := range events {
		if _, ok := keep[event.ID]; ok {
			continue
		}
		if err := e.eventRepository.RemoveByID(ctx, event.ID); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}
		purgedEvents++
	}

	if purgedWindows > 0 || purgedEvents > 0 {
		e.logger.Info().
			Int("windows", purgedWindows).
			Int("events", purgedEvents).
			Msg("orphaned windows and events purged on startup")
	}

	return nil
}
