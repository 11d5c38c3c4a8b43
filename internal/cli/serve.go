package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/api"
	"github.com/verdant-labs/greengauge/internal/config"
)

// shutdownGrace is how long in-flight requests get to finish on SIGINT.
const shutdownGrace = 10 * time.Second

// newServeCmd creates the "serve" subcommand running the HTTP API.
func newServeCmd(cfg *config.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Serve the calculation engines over an HTTP JSON API until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			return runServer(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// runServer blocks until the server fails or the process receives an
// interrupt, then shuts down gracefully.
func runServer(ctx context.Context, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := api.New(logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return svc.Shutdown(shutdownCtx)
}
