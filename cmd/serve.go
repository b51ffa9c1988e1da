package main

import (
	"context"
	"errors"
	"launchpad/internal/api"
	"launchpad/internal/config"
	"launchpad/internal/contact"
	"launchpad/pkg/logger"
	"launchpad/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	provider, err := metrics.NewProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create metrics provider", zap.Error(err))
	}
	m, err := metrics.NewContact(provider.Meter())
	if err != nil {
		logger.Fatal(ctx, "could not create contact metrics", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Contact: contact.New(getNotifier(ctx, cfg, m), m),
		Metrics: provider,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop metrics provider", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the landing page and contact API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
