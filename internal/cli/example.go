// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"suggestpress/internal/docfile"
	"suggestpress/internal/models"
	"suggestpress/internal/slug"
)

func newExampleCmd() *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the example document",
		Long: `Print the example announcement as a document file. Save it and pass it
to convert or preview to get started. With --output the file is written to
that directory, named after the document title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := docfile.ParseFormat(format)
			if err != nil {
				return err
			}
			doc := models.Example()
			if outDir == "" {
				return docfile.Encode(cmd.OutOrStdout(), doc, f)
			}

			path := filepath.Join(outDir, slug.FileName(doc.Title, string(f)))
			if err := docfile.Save(path, doc); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml|json)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write the file into this directory instead of stdout")

	return cmd
}
