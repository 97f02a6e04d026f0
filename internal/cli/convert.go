// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"suggestpress/internal/docfile"
	"suggestpress/internal/markup"
	"suggestpress/internal/models"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type convertOptions struct {
	html  bool
	copy  bool
	watch bool
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a JSON or YAML document to chat markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if opts.watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
			}
			return runConvert(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "print the preview HTML instead of the markup")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the markup to the clipboard")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "convert again whenever FILE changes")

	return cmd
}

func runConvert(ctx context.Context, out io.Writer, path string, opts convertOptions) error {
	live := markup.NewLive(fileProvider(path), convertSink(out, opts))
	if err := live.Refresh(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	slog.Info("watching for changes", "path", path)
	return watchFile(ctx, path, func() {
		if err := live.Refresh(); err != nil {
			slog.Error("convert failed", "path", path, "error", err)
			return
		}
		slog.Debug("converted", "path", path)
	})
}

func fileProvider(path string) markup.Provider {
	return markup.ProviderFunc(func() (models.Document, error) {
		return docfile.Load(path)
	})
}

func convertSink(out io.Writer, opts convertOptions) markup.Sink {
	return markup.SinkFunc(func(res markup.Result) error {
		text := res.Markup
		if opts.html {
			text = string(res.Fragment.HTML())
		}
		if text != "" {
			if _, err := fmt.Fprintln(out, text); err != nil {
				return err
			}
		}
		// An empty result leaves the clipboard alone.
		if opts.copy && res.Markup != "" {
			if err := copyToClipboard(res.Markup); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}
		return nil
	})
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that save by renaming a
// temporary file are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "path", path, "error", err)
		case <-pending:
			pending = nil
			onChange()
		}
	}
}
