// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PendingClientEvent is a durable record of a client request that is waiting
// for interactive user approval. Its ID equals the inbound request id, which
// makes the persisted queue double as an idempotency index: a re-delivered
// request can never produce a second prompt or a second response.
type PendingClientEvent struct {
	// ID is the inbound request id. Unique in the queue.
	ID string `json:"id"`

	// Type is the protocol method that produced the event.
	Type Method `json:"type"`

	// Request is the original inbound request message, kept so that the
	// terminal response can be constructed after the user decides.
	Request RequestMessage `json:"request"`

	// TabID identifies the originating client tab the terminal response
	// must be delivered to.
	TabID string `json:"tabId"`

	// CreatedAt is the enqueue time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Window kinds recognised by the orchestrator.
const (
	// WindowKindMain is the wallet's primary UI surface. When one is open,
	// new pending events are announced to it instead of opening a prompt.
	WindowKindMain = "main"

	// WindowKindPrompt is a dedicated approval window opened for a single
	// pending event and closed when that event resolves.
	WindowKindPrompt = "prompt"
)

// AppWindow records one top-level UI window owned by the wallet. Persisted
// so that the orchestrator can correlate windows with pending events across
// background restarts; reconciled against actually-open windows at startup.
type AppWindow struct {
	// ID is the host-environment window id.
	ID string `json:"id"`

	// Kind is WindowKindMain or WindowKindPrompt.
	Kind string `json:"kind"`

	// EventID is the pending event a prompt window was opened for.
	// Empty for main windows.
	EventID string `json:"eventId,omitempty"`

	// CreatedAt is the window creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// WindowSpec describes the window the orchestrator asks the host
// environment to create for an approval prompt.
type WindowSpec struct {
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
}
