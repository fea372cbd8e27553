package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input folder and generate notes for new transcripts",
		Long: "Watch paths.input for transcript files (.txt, .srt, .vtt, .md). Each file is turned into\n" +
			"notes in paths.output using render.format, then moved to paths.archived. A <name>.url file\n" +
			"next to a transcript overrides render.base_url for it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			log := deps.App.Logger

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Lecture Notes Watcher")
			log.Info(ctx, "========================================")
			log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			log.Info(ctx, "Provider: %s", cfg.Provider)
			log.Info(ctx, "Format: %s", cfg.Render.Format)
			log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, deps.App.Processor.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					errChan <- err
				}
			}()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case <-ctx.Done():
			case err := <-errChan:
				return fmt.Errorf("watcher: %w", err)
			}

			cancel()
			log.Info(ctx, "Watcher stopped")
			return nil
		},
	}
}

// ensureDirectories creates the input, output and archive folders.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
