// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// UI notification types pushed to wallet surfaces.
const (
	// NotificationSessionsChanged is broadcast after sessions are created
	// or removed so open surfaces can refresh their connection lists.
	NotificationSessionsChanged = "sessions_changed"

	// NotificationEventsChanged is broadcast after the pending event queue
	// changes so an open main surface can show or clear approval badges.
	NotificationEventsChanged = "events_changed"

	// NotificationOpenWindow instructs the UI shell to open a window with
	// the geometry carried in the payload ([WindowInstruction]).
	NotificationOpenWindow = "open_window"

	// NotificationCloseWindow instructs the UI shell to close the window
	// named in the payload ([WindowInstruction]).
	NotificationCloseWindow = "close_window"
)

// WindowInstruction is the payload of open_window and close_window
// notifications.
type WindowInstruction struct {
	WindowID string     `json:"windowId"`
	Spec     WindowSpec `json:"spec,omitempty"`
}

// UINotification is a fire-and-forget message pushed to every open wallet
// UI surface. Unlike a ResponseMessage it is not addressed to a tab and
// carries no request correlation.
type UINotification struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
