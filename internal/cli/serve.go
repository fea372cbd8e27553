package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/httpserver"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd(deps *Dependencies) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /generate_notes over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := deps.App.Logger
			if addr == "" {
				addr = deps.App.Config.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := httpserver.New(deps.App.Pipeline, log)

			errChan := make(chan error, 1)
			go func() {
				errChan <- srv.Listen(ctx, addr)
			}()

			select {
			case <-ctx.Done():
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			log.Info(shutdownCtx, "HTTP server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default server.addr)")

	return cmd
}
