// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Key namespaces of the persisted state layout. Every record type lives
// under its own prefix so repositories can scan their own slice of the
// store without touching anyone else's.
const (
	sessionKeyPrefix    = "session:"
	privateKeyKeyPrefix = "privatekey:"
	accountKeyPrefix    = "account:"
	eventKeyPrefix      = "event:"
	windowKeyPrefix     = "window:"
	passwordTagKey      = "passwordtag"
)

func sessionKey(id string) string { return sessionKeyPrefix + id }

func privateKeyKey(publicKey string) string { return privateKeyKeyPrefix + publicKey }

func accountKey(address string) string { return accountKeyPrefix + address }

func eventKey(id string) string { return eventKeyPrefix + id }

func windowKey(id string) string { return windowKeyPrefix + id }
