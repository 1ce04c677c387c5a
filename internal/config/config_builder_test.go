// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// minimalValidConfig satisfies validation so builder tests can focus on
// merge mechanics.
func minimalValidConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "test.db"}},
		Server:  Server{HTTPAddress: "127.0.0.1:8547"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier sources winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Wallet: Wallet{Name: "primary"}},
		&StructuredConfig{Wallet: Wallet{Name: "fallback", Host: "wallet-host"}},
		minimalValidConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.Wallet.Name)
	assert.Equal(t, "wallet-host", cfg.Wallet.Host)
}

// TestBuild_DefaultsFillGaps verifies that withDefaults alone yields a
// complete, valid configuration.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8547", cfg.Server.HTTPAddress)
	assert.Equal(t, "wallet.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.JanitorInterval)
	assert.NotEmpty(t, cfg.Wallet.DefaultGenesisHash)
}

// TestBuild_DefaultsDoNotOverride verifies that defaults, merged last, never
// replace a value an explicit source provided.
func TestBuild_DefaultsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "custom.db"}},
		Server:  Server{HTTPAddress: "127.0.0.1:9000"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestBuild_MissingStorageFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "127.0.0.1:8547"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_MissingServerAddressFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "test.db"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_UnknownDefaultGenesisHashFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	cfg := minimalValidConfig()
	cfg.Wallet.DefaultGenesisHash = "bm90LWEtcmVhbC1uZXR3b3Jr"
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWalletConfigs)
}

func TestBuild_KnownDefaultGenesisHashPassesValidation(t *testing.T) {
	b := newConfigBuilder()
	cfg := minimalValidConfig()
	// testnet
	cfg.Wallet.DefaultGenesisHash = "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI="
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.NoError(t, err)
}
