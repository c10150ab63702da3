package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fridgescan/internal/history"
	"fridgescan/internal/scan"
	"fridgescan/internal/session"
)

func newCommitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Archive the session's items to history and reset the session",
		Long: `Confirm the reviewed session: its items are written to the history
archive and the live session is cleared. By default items still needing
attention block the commit; --force archives them as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled in configuration; enable [history] to commit sessions")
			}

			return ctx.withSession(func(store *session.Store) error {
				state := store.Session()
				if len(state.Items) == 0 {
					return errors.New("no items to commit; run `fridgescan scan` first")
				}

				if unknown := scan.UnknownItems(state.Items); len(unknown) > 0 && !force {
					return fmt.Errorf("%d item(s) still need labeling; label them or use --force", len(unknown))
				}

				return ctx.withHistory(func(archive *history.Store) error {
					id, err := archive.Archive(cmd.Context(), state)
					if err != nil {
						return fmt.Errorf("archive session: %w", err)
					}
					store.Reset()
					fmt.Fprintf(cmd.OutOrStdout(), "Committed %d item(s) as history session #%d.\n", len(state.Items), id)
					return nil
				})
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Commit even when items still need labeling")
	return cmd
}
