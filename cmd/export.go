package main

import (
	"context"
	"io"
	"launchpad/internal/api"
	"launchpad/internal/config"
	"launchpad/internal/web"
	"launchpad/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that renders the landing
// page to a file for static hosting. "-" writes to stdout.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Renders the landing page to an HTML file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			out, _ := cmd.Flags().GetString("out")

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					logger.Fatal(ctx, "could not create output file", zap.Error(err))
				}
				defer func() {
					if err := f.Close(); err != nil {
						logger.Error(ctx, "could not close output file", zap.Error(err))
					}
				}()
				w = f
			}

			if err := web.NewPages(api.NewOptions(cfg).Site).Render(w); err != nil {
				logger.Fatal(ctx, "could not export landing page", zap.Error(err)) //nolint: gocritic
			}

			logger.Info(ctx, "landing page exported", zap.String("out", out))
		},
	}

	cmd.Flags().StringP("out", "o", "index.html", "Output file path, - for stdout")

	return cmd
}
