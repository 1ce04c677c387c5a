// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-algo-wallet/internal/client"
)

func main() {
	app, err := client.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "walletui: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "walletui: %v\n", err)
		os.Exit(1)
	}
}
