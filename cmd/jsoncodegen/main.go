// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package main is the entry point for the jsoncodegen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dacolabs/jsoncodegen/cmd/jsoncodegen/internal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := internal.Run(ctx, os.Args[1:], os.Getenv)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
