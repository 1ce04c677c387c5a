// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-algo-wallet daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Wallet holds the wallet's identity and vault settings.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds configuration for the persistent key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// bridge that clients and UI surfaces connect through.
	Server Server `envPrefix:"SERVER_"`

	// Windows holds the fixed geometry policy for approval prompt windows.
	Windows Windows `envPrefix:"WINDOWS_"`

	// Workers holds configuration for background worker processes such as
	// the session janitor.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Wallet holds identity and vault-level configuration values.
type Wallet struct {
	// Name is the wallet name reported in discover results.
	// Env: WALLET_NAME
	Name string `env:"NAME"`

	// Icon is the URL of the wallet icon reported in discover results.
	// Env: WALLET_ICON
	Icon string `env:"ICON"`

	// Host is the wallet's own identity host reported in discover results.
	// Env: WALLET_HOST
	Host string `env:"HOST"`

	// TagPlaintext is the fixed known plaintext sealed into the password
	// tag — an installation identifier, never a secret. Changing it on an
	// initialized vault makes password verification fail, so it must stay
	// stable for the lifetime of the installation.
	// Env: WALLET_TAG_PLAINTEXT
	TagPlaintext string `env:"TAG_PLAINTEXT"`

	// DefaultGenesisHash selects the network used when a request omits an
	// explicit genesis hash. Must be one of the built-in networks.
	// Env: WALLET_DEFAULT_GENESIS_HASH
	DefaultGenesisHash string `env:"DEFAULT_GENESIS_HASH"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite backing store.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" for ephemeral runs).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP bridge listens,
	// in "host:port" format (e.g. "127.0.0.1:8547").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Windows holds the fixed sizing/positioning policy applied to every
// approval prompt window the orchestrator opens.
type Windows struct {
	// PromptWidth is the prompt window width in pixels.
	// Env: WINDOWS_PROMPT_WIDTH
	PromptWidth int `env:"PROMPT_WIDTH"`

	// PromptHeight is the prompt window height in pixels.
	// Env: WINDOWS_PROMPT_HEIGHT
	PromptHeight int `env:"PROMPT_HEIGHT"`

	// PromptLeft is the prompt window left offset in pixels.
	// Env: WINDOWS_PROMPT_LEFT
	PromptLeft int `env:"PROMPT_LEFT"`

	// PromptTop is the prompt window top offset in pixels.
	// Env: WINDOWS_PROMPT_TOP
	PromptTop int `env:"PROMPT_TOP"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often the session janitor sweeps sessions
	// bound to networks that are no longer recognised (e.g. "10m").
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig loads the daemon configuration by merging, in order
// of precedence: environment variables, command-line flags, and the
// optional JSON file named by either of the first two.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig is the built-in fallback used for fields no configuration
// source provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Wallet: Wallet{
			Name:               "go-algo-wallet",
			Icon:               "/static/wallet.svg",
			Host:               "go-algo-wallet",
			TagPlaintext:       "go-algo-wallet-installation",
			DefaultGenesisHash: "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=",
		},
		Storage: Storage{
			DB: DB{DSN: "wallet.db"},
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8547",
			RequestTimeout: 30 * time.Second,
		},
		Windows: Windows{
			PromptWidth:  400,
			PromptHeight: 660,
			PromptLeft:   100,
			PromptTop:    100,
		},
		Workers: Workers{
			JanitorInterval: 10 * time.Minute,
		},
	}
}
