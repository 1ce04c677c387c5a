// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-algo-wallet/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the Err* sentinels
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Wallet.DefaultGenesisHash != "" {
		if _, ok := models.FindNetworkByGenesisHash(models.DefaultNetworks(), cfg.Wallet.DefaultGenesisHash); !ok {
			return ErrInvalidWalletConfigs
		}
	}

	return nil
}
