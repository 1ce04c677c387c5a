// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for the optional config file.
type StructuredJSONConfig struct {
	Wallet struct {
		Name               string `json:"name"`
		Icon               string `json:"icon"`
		Host               string `json:"host"`
		TagPlaintext       string `json:"tag_plaintext"`
		DefaultGenesisHash string `json:"default_genesis_hash"`
	} `json:"wallet,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Windows struct {
		PromptWidth  int `json:"prompt_width"`
		PromptHeight int `json:"prompt_height"`
		PromptLeft   int `json:"prompt_left"`
		PromptTop    int `json:"prompt_top"`
	} `json:"windows,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Wallet: Wallet{
			Name:               jsonCfg.Wallet.Name,
			Icon:               jsonCfg.Wallet.Icon,
			Host:               jsonCfg.Wallet.Host,
			TagPlaintext:       jsonCfg.Wallet.TagPlaintext,
			DefaultGenesisHash: jsonCfg.Wallet.DefaultGenesisHash,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Windows: Windows{
			PromptWidth:  jsonCfg.Windows.PromptWidth,
			PromptHeight: jsonCfg.Windows.PromptHeight,
			PromptLeft:   jsonCfg.Windows.PromptLeft,
			PromptTop:    jsonCfg.Windows.PromptTop,
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}
