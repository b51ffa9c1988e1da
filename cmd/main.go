// Package main provides the CLI entrypoint for the landing page service.
// It wires subcommands (serve, notify, export), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"launchpad/internal/config"
	"launchpad/internal/contact"
	"launchpad/pkg/logger"
	"launchpad/pkg/metrics"
	"launchpad/pkg/notifier"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getNotifier builds the notifier for the channels enabled in cfg. m may be nil.
func getNotifier(ctx context.Context, cfg *config.Config, m *metrics.Contact) notifier.Notifier {
	opts := contact.NewChannelOptions(cfg)
	n, err := contact.NewNotifier(opts, nil, m)
	if err != nil {
		logger.Fatal(ctx, "could not create notifier", zap.Error(err))
	}

	if fanout, ok := n.(*notifier.Fanout); ok {
		logger.Info(ctx, "contact delivery channels enabled", zap.Strings("channels", fanout.Names()))
	} else {
		logger.Warn(ctx, "no contact delivery channel enabled, inquiries will only be logged")
	}

	return n
}

// main sets up the root Cobra command, loads configuration and logging before
// any subcommand runs, and registers subcommands before executing the CLI.
func main() {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "launchpad",
		Short:        "Landing page and contact form service",
		SilenceUsage: true,
		// subcommands receive cfg by pointer; it is filled here once flags are parsed.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			envPath, _ := cmd.Flags().GetString("env")

			log.Println("loading config ...")
			loaded, err := config.Load(configPath, envPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().String("env", ".env", "Dotenv File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		notifyCommand(cfg),
		exportCommand(cfg),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
