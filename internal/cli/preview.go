// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"suggestpress/internal/docfile"
	"suggestpress/internal/markup"
	"suggestpress/internal/termview"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Show a document's preview in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := docfile.Load(args[0])
			if err != nil {
				return err
			}
			res := markup.Convert(doc)
			if res.IsEmpty() {
				return nil
			}
			out := cmd.OutOrStdout()
			view := termview.New(lipgloss.NewRenderer(out))
			_, err = fmt.Fprintln(out, view.Render(res.Fragment))
			return err
		},
	}
}
