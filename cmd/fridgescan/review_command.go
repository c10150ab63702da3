package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fridgescan/internal/scan"
	"fridgescan/internal/session"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review the session: identified items and items needing attention",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				items := store.Items()
				if jsonOut {
					return writeJSON(cmd, reviewPayload{
						Items:          items,
						Identified:     scan.IdentifiedItems(items),
						NeedsAttention: scan.UnknownItems(items),
						UnlabeledCount: scan.UnlabeledCount(items),
					})
				}

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No items in the current session. Run `fridgescan scan` first.")
					return nil
				}

				identified := scan.IdentifiedItems(items)
				unknown := scan.UnknownItems(items)

				if len(identified) > 0 {
					fmt.Fprintf(out, "Identified (%d):\n", len(identified))
					writeRows(out, itemHeaders(), itemRows(identified), itemAligns())
				}
				if len(unknown) > 0 {
					fmt.Fprintf(out, "Needs attention (%d):\n", len(unknown))
					writeRows(out, itemHeaders(), itemRows(unknown), itemAligns())
				}
				fmt.Fprintf(out, "Unlabeled: %d\n", scan.UnlabeledCount(items))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit review data as JSON")
	return cmd
}

type reviewPayload struct {
	Items          []scan.Item `json:"items"`
	Identified     []scan.Item `json:"identified"`
	NeedsAttention []scan.Item `json:"needsAttention"`
	UnlabeledCount int         `json:"unlabeledCount"`
}

func itemHeaders() []string {
	return []string{"ID", "Name", "Qty", "Container", "Detection", "Conf", "Freshness"}
}

func itemAligns() []columnAlignment {
	return []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
}

func itemRows(items []scan.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			shortID(item.ID),
			scan.DisplayName(item),
			item.Quantity,
			humanContainer(item.ContainerType),
			string(item.DetectionType),
			strconv.Itoa(item.Confidence),
			string(item.Freshness),
		})
	}
	return rows
}
