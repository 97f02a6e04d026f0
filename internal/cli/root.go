// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cli implements the suggestpress command line: the web server and
// the file-based conversion commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "suggestpress",
		Short:         "Compose suggestion announcements for chat and the web",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // main logs the error once
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newExampleCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}
