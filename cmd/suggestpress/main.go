// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for suggestpress. Subcommands start the
// web composer or convert document files from the command line.
package main

import (
	"log/slog"
	"os"

	"suggestpress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
