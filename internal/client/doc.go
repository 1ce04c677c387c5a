// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive wallet shell runtime.
//
// It wires the terminal approval UI and the daemon adapter into a single
// process lifecycle: the shell registers itself as the wallet's main window,
// surfaces pending approval requests, and reports its closure back to the
// daemon on exit.
package client
