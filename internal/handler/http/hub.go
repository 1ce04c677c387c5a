// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/utils"
	"github.com/MKhiriev/go-algo-wallet/models"
)

const mailboxCapacity = 16

// Hub is the in-process message exchange behind the HTTP bridge. Client
// tabs and UI surfaces long-poll their mailboxes; the wallet core pushes
// into them through the [service.Transport] and [service.WindowManager]
// contracts, both of which Hub implements.
//
// The wallet daemon cannot open OS windows itself: Open registers the
// window and instructs the UI shell to create it, and the shell reports
// closures back through the bridge.
type Hub struct {
	mu            sync.Mutex
	tabs          map[string]chan models.ResponseMessage
	surfaces      map[string]chan models.UINotification
	windows       map[string]struct{}
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHub returns an empty Hub.
func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		tabs:          make(map[string]chan models.ResponseMessage),
		surfaces:      make(map[string]chan models.UINotification),
		windows:       make(map[string]struct{}),
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// Deliver implements [service.Transport]. The message is queued in the
// tab's mailbox until the tab polls it; a mailbox that stays full loses
// the message with an error.
func (h *Hub) Deliver(_ context.Context, tabID string, message models.ResponseMessage) error {
	select {
	case h.tabMailbox(tabID) <- message:
		return nil
	default:
		return fmt.Errorf("mailbox of tab %s is full", tabID)
	}
}

// Broadcast implements [service.Transport]. Surfaces that do not drain
// their mailbox quickly enough miss notifications; every notification type
// is re-fetchable state, so a miss is harmless.
func (h *Hub) Broadcast(_ context.Context, notification models.UINotification) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for surfaceID, mailbox := range h.surfaces {
		select {
		case mailbox <- notification:
		default:
			h.logger.Warn().
				Str("surfaceId", surfaceID).
				Str("type", notification.Type).
				Msg("surface mailbox full, notification dropped")
		}
	}
	return nil
}

// Open implements [service.WindowManager]: it registers the window id and
// broadcasts an open-window instruction for the UI shell to act on.
func (h *Hub) Open(ctx context.Context, spec models.WindowSpec) (string, error) {
	windowID := h.uuidGenerator.Generate()

	h.mu.Lock()
	h.windows[windowID] = struct{}{}
	h.mu.Unlock()

	if err := h.broadcastWindowInstruction(ctx, models.NotificationOpenWindow, windowID, spec); err != nil {
		return "", err
	}
	return windowID, nil
}

// Close implements [service.WindowManager].
func (h *Hub) Close(ctx context.Context, windowID string) error {
	h.mu.Lock()
	delete(h.windows, windowID)
	h.mu.Unlock()

	return h.broadcastWindowInstruction(ctx, models.NotificationCloseWindow, windowID, models.WindowSpec{})
}

// OpenWindowIDs implements [service.WindowManager].
func (h *Hub) OpenWindowIDs(_ context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.windows))
	for id := range h.windows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *Hub) broadcastWindowInstruction(ctx context.Context, kind, windowID string, spec models.WindowSpec) error {
	payload, err := json.Marshal(models.WindowInstruction{WindowID: windowID, Spec: spec})
	if err != nil {
		return fmt.Errorf("marshal window instruction: %w", err)
	}
	return h.Broadcast(ctx, models.UINotification{Type: kind, Payload: payload})
}

// MarkWindowOpen records a window the UI shell created on its own, such as
// its main surface.
func (h *Hub) MarkWindowOpen(windowID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.windows[windowID] = struct{}{}
}

// MarkWindowClosed records that the UI shell closed a window.
func (h *Hub) MarkWindowClosed(windowID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.windows, windowID)
}

// PollTab blocks until a response for tabID arrives or ctx is done. The
// second return value is false when the poll timed out.
func (h *Hub) PollTab(ctx context.Context, tabID string) (models.ResponseMessage, bool) {
	select {
	case message := <-h.tabMailbox(tabID):
		return message, true
	case <-ctx.Done():
		return models.ResponseMessage{}, false
	}
}

// PollSurface blocks until a notification for surfaceID arrives or ctx is
// done.
func (h *Hub) PollSurface(ctx context.Context, surfaceID string) (models.UINotification, bool) {
	select {
	case notification := <-h.surfaceMailbox(surfaceID):
		return notification, true
	case <-ctx.Done():
		return models.UINotification{}, false
	}
}

func (h *Hub) tabMailbox(tabID string) chan models.ResponseMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	mailbox, ok := h.tabs[tabID]
	if !ok {
		mailbox = make(chan models.ResponseMessage, mailboxCapacity)
		h.tabs[tabID] = mailbox
	}
	return mailbox
}

func (h *Hub) surfaceMailbox(surfaceID string) chan models.UINotification {
	h.mu.Lock()
	defer h.mu.Unlock()

	mailbox, ok := h.surfaces[surfaceID]
	if !ok {
		mailbox = make(chan models.UINotification, mailboxCapacity)
		h.surfaces[surfaceID] = mailbox
	}
	return mailbox
}
