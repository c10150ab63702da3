package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fridgescan/internal/detect"
	"fridgescan/internal/scan"
	"fridgescan/internal/session"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var imageRef string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Start a scan session and run detection",
		Long: `Start a new scan session and feed the detected items into it one at a
time. Starting a scan replaces any session already in progress. The session
stays active afterwards so items can be reviewed and labeled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				if err := runScan(cmd, ctx, store, imageRef, !jsonOut); err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, store.Session())
				}
				printSessionSummary(cmd, store)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&imageRef, "image", "", "Captured image reference to stamp onto detected items")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the resulting session as JSON")
	return cmd
}

// runScan starts a fresh session and reveals the detection batch into it.
// Cancelling the command context stops the reveal without leaking items.
func runScan(cmd *cobra.Command, ctx *commandContext, store *session.Store, imageRef string, progress bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	store.Start(imageRef)

	var detector detect.Detector = detect.Simulator{}
	protos, err := detector.Detect(cmd.Context(), imageRef)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}

	interval := time.Duration(cfg.Detection.RevealIntervalMS) * time.Millisecond
	revealer := detect.NewRevealer(store, interval, ctx.ensureLogger())
	if progress {
		out := cmd.OutOrStdout()
		revealer.OnReveal = func(item scan.Item, revealed, total int) {
			fmt.Fprintf(out, "  [%d/%d] %s (%s)\n", revealed, total, scan.DisplayName(item), item.DetectionType)
		}
	}

	if _, err := revealer.Run(cmd.Context(), protos); err != nil {
		return fmt.Errorf("detection interrupted: %w", err)
	}
	return nil
}

func printSessionSummary(cmd *cobra.Command, store *session.Store) {
	out := cmd.OutOrStdout()
	items := store.Items()
	unknown := scan.UnknownItems(items)

	fmt.Fprintf(out, "Detected %d items.\n", len(items))
	if len(unknown) == 0 {
		fmt.Fprintln(out, "Everything identified. Run `fridgescan commit` to archive the session.")
		return
	}
	fmt.Fprintf(out, "%d item(s) need labeling:\n", len(unknown))
	for _, item := range unknown {
		fmt.Fprintf(out, "  %s  %s\n", shortID(item.ID), scan.DisplayName(item))
	}
	fmt.Fprintln(out, "Run `fridgescan label <id>` to see suggestions for an item.")
}
