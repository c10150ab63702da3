package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fridgescan/internal/capture"
	"fridgescan/internal/session"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Start a scan automatically when a capture device is attached",
		Long: `Listen for udev device-attach events on the configured capture subsystem
(video4linux by default) and run a scan when one appears. Requires
capture.enabled = true in configuration. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Capture.Enabled {
				return errors.New("capture monitoring is disabled; set capture.enabled = true in configuration")
			}

			watchCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := func(handlerCtx context.Context, device string) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Capture device %s attached, starting scan...\n", device)
				return ctx.withSession(func(store *session.Store) error {
					if err := runScan(cmd, ctx, store, device, true); err != nil {
						return err
					}
					printSessionSummary(cmd, store)
					return nil
				})
			}

			monitor := capture.NewMonitor(cfg, ctx.ensureLogger(), handler)
			if err := monitor.Start(watchCtx); err != nil {
				return err
			}
			defer monitor.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for capture devices (Ctrl-C to stop)...\n", cfg.Capture.Subsystem)
			<-watchCtx.Done()
			fmt.Fprintln(cmd.OutOrStdout(), "Watch stopped.")
			return nil
		},
	}
}
