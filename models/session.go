// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session represents a standing authorization grant for one client host on
// one network. It is the persistence model consulted on every signing
// request; a client without a live session is always routed through the
// interactive approval flow.
//
// At most one session exists per (Host, GenesisHash) pair.
type Session struct {
	// ID is the opaque unique identifier of the session (UUIDv7).
	ID string `json:"id"`

	// Host is the origin of the requesting client
	// (e.g. "https://dapp.example").
	Host string `json:"host"`

	// AppName is the client-supplied human-readable application name.
	AppName string `json:"appName"`

	// Description is an optional client-supplied description.
	Description string `json:"description,omitempty"`

	// IconURL is an optional URL of the client's icon.
	IconURL string `json:"iconUrl,omitempty"`

	// GenesisHash is the base64-encoded genesis hash of the network the
	// grant is bound to.
	GenesisHash string `json:"genesisHash"`

	// GenesisID is the human-readable network identifier
	// (e.g. "testnet-v1.0"). Informational; GenesisHash is authoritative.
	GenesisID string `json:"genesisId"`

	// AuthorizedAddresses lists the account addresses the client may
	// request signatures from. Always a subset of the wallet's known
	// accounts at grant time.
	AuthorizedAddresses []string `json:"authorizedAddresses"`

	// CreatedAt is the grant creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`

	// UsedAt is the time of the last request served through this session,
	// in Unix milliseconds. Strictly increasing across uses.
	UsedAt int64 `json:"usedAt"`
}

// Touch advances UsedAt to now (Unix milliseconds). When two uses land in
// the same millisecond the value is bumped by one so that UsedAt remains
// strictly increasing.
func (s *Session) Touch(nowMilli int64) {
	if nowMilli <= s.UsedAt {
		nowMilli = s.UsedAt + 1
	}
	s.UsedAt = nowMilli
}
