package main

import (
	"context"
	"fmt"
	"launchpad/internal/config"
	"launchpad/internal/contact"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// notifyCommand constructs the 'notify' subcommand that pushes a single
// inquiry through the configured delivery channels, e.g. to verify credentials.
func notifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Delivers a test inquiry through the configured channels",
		Run: func(cmd *cobra.Command, args []string) {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			inquiry := domain.Inquiry{}
			inquiry.Name, _ = cmd.Flags().GetString("name")
			inquiry.Email, _ = cmd.Flags().GetString("email")
			inquiry.Message, _ = cmd.Flags().GetString("message")

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			svc := contact.New(getNotifier(ctx, cfg, nil), nil)
			if err := svc.Submit(ctx, inquiry); err != nil {
				logger.Fatal(ctx, "could not deliver inquiry", zap.Error(err))
			}

			fmt.Println("inquiry delivered") //nolint: forbidigo
		},
	}

	cmd.Flags().String("name", "", "Sender name")
	cmd.Flags().String("email", "", "Sender email address")
	cmd.Flags().String("message", "This is a test inquiry.", "Inquiry message")
	cmd.Flags().Duration("timeout", 30*time.Second, "Overall delivery timeout")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
