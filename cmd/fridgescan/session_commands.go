package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fridgescan/internal/session"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				state := store.Session()
				if jsonOut {
					return writeJSON(cmd, state)
				}

				out := cmd.OutOrStdout()
				if state.IsActive {
					fmt.Fprintln(out, "Session: active")
				} else {
					fmt.Fprintln(out, "Session: inactive")
				}
				if state.StartedAt != nil {
					fmt.Fprintf(out, "Started: %s\n", state.StartedAt.Local().Format(time.RFC1123))
				}
				if state.SourceImageRef != "" {
					fmt.Fprintf(out, "Image:   %s\n", state.SourceImageRef)
				}
				fmt.Fprintf(out, "Items:   %d (%d identified, %d need attention, %d unlabeled)\n",
					len(state.Items),
					len(store.IdentifiedItems()),
					len(store.UnknownItems()),
					store.UnlabeledCount(),
				)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the session as JSON")
	return cmd
}

func newEndCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the active session, keeping its items for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				store.End()
				fmt.Fprintln(cmd.OutOrStdout(), "Session ended. Items remain available for review and commit.")
				return nil
			})
		},
	}
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the session and delete its persisted record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				discarded := len(store.Items())
				store.Reset()
				fmt.Fprintf(cmd.OutOrStdout(), "Session reset. %d item(s) discarded.\n", discarded)
				return nil
			})
		},
	}
}

func newSetImageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-image <ref>",
		Short: "Update the session's captured-image reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				store.SetSourceImage(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Source image set to %s\n", args[0])
				return nil
			})
		},
	}
}
