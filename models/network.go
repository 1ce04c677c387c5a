// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Network describes one statically known Algorand-compatible network the
// wallet can operate on. Networks are identified by genesis hash; the
// genesis id is display metadata only.
type Network struct {
	// GenesisHash is the base64-encoded 32-byte genesis hash.
	GenesisHash string `json:"genesisHash"`

	// GenesisID is the human-readable network name (e.g. "mainnet-v1.0").
	GenesisID string `json:"genesisId"`

	// Methods lists the provider methods the wallet supports on this
	// network.
	Methods []Method `json:"methods"`
}

// DefaultNetworks returns the built-in network registry: MainNet, TestNet
// and BetaNet, all supporting the full provider method set.
func DefaultNetworks() []Network {
	methods := []Method{
		MethodEnable,
		MethodDisable,
		MethodDiscover,
		MethodSignMessage,
		MethodSignTransactions,
	}

	return []Network{
		{
			GenesisHash: "wGHE2Pwdvd7S12BL5FaOP20EGYesN73ktiC1qzkkit8=",
			GenesisID:   "mainnet-v1.0",
			Methods:     methods,
		},
		{
			GenesisHash: "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=",
			GenesisID:   "testnet-v1.0",
			Methods:     methods,
		},
		{
			GenesisHash: "mFgazF+2uRS1tMiL9dsj01hJGySEmPN28B/TjjvpVW0=",
			GenesisID:   "betanet-v1.0",
			Methods:     methods,
		},
	}
}

// FindNetworkByGenesisHash returns the network with the given genesis hash
// from networks, or false when the hash is not recognised.
func FindNetworkByGenesisHash(networks []Network, genesisHash string) (Network, bool) {
	for _, network := range networks {
		if network.GenesisHash == genesisHash {
			return network, true
		}
	}
	return Network{}, false
}
