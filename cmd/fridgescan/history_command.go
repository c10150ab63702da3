package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fridgescan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect committed scan sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, ctx)
		},
	}

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func runHistoryList(cmd *cobra.Command, ctx *commandContext) error {
	return ctx.withHistory(func(archive *history.Store) error {
		records, err := archive.List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "History is empty.")
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, record := range records {
			started := ""
			if record.StartedAt != nil {
				started = record.StartedAt.Local().Format("2006-01-02 15:04")
			}
			rows = append(rows, []string{
				strconv.FormatInt(record.ID, 10),
				record.CommittedAt.Local().Format("2006-01-02 15:04"),
				started,
				strconv.Itoa(record.ItemCount),
				strconv.Itoa(record.IdentifiedCount),
				strconv.Itoa(record.UnknownCount),
			})
		}
		writeRows(out,
			[]string{"#", "Committed", "Started", "Items", "Identified", "Unknown"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
		)
		return nil
	})
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <session-number>",
		Short: "Show the items of a committed session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session number %q", args[0])
			}
			return ctx.withHistory(func(archive *history.Store) error {
				record, err := archive.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if record == nil {
					return fmt.Errorf("history session #%d not found", id)
				}
				items, err := archive.Items(cmd.Context(), id)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"session": record,
						"items":   items,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Session #%d, committed %s\n", record.ID, record.CommittedAt.Local().Format(time.RFC1123))
				writeRows(out, itemHeaders(), itemRows(items), itemAligns())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the session and its items as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all committed sessions from history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(archive *history.Store) error {
				count, err := archive.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d session(s) from history.\n", count)
				return nil
			})
		},
	}
}
