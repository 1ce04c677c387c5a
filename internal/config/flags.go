// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d sqlite database path
//	-c/-config json file path with configs
//	-wallet-name wallet display name
//	-wallet-icon wallet icon URL
//	-default-genesis-hash default network genesis hash
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-janitor-interval session janitor sweep interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var walletName string
	var walletIcon string
	var defaultGenesisHash string
	var requestTimeout time.Duration
	var janitorInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&walletName, "wallet-name", "", "Wallet display name")
	flag.StringVar(&walletIcon, "wallet-icon", "", "Wallet icon URL")
	flag.StringVar(&defaultGenesisHash, "default-genesis-hash", "", "Default network genesis hash")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&janitorInterval, "janitor-interval", 0, "Session janitor sweep interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Wallet: Wallet{
			Name:               walletName,
			Icon:               walletIcon,
			DefaultGenesisHash: defaultGenesisHash,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// merge step can fall through to other configuration sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 0 || port > 65535 {
		return errors.New("port must be in range 0-65535")
	}

	host := hostAndPort[0]
	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid IP address")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
