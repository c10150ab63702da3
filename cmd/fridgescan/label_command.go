package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fridgescan/internal/scan"
	"fridgescan/internal/session"
	"fridgescan/internal/suggest"
)

func newLabelCommand(ctx *commandContext) *cobra.Command {
	var staples bool

	cmd := &cobra.Command{
		Use:   "label <item-id> [text...]",
		Short: "Label an item, or list candidate labels when no text is given",
		Long: `Commit a label for an item. The item becomes identified and keeps the
label even if detection was uncertain; labeling is one-way, though a later
label can replace the text. Without label text, the candidate suggestions for
the item's container are printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(store *session.Store) error {
				item, err := findItem(store, args[0])
				if err != nil {
					return err
				}

				if len(args) == 1 {
					return printCandidates(cmd, ctx, *item, staples)
				}

				label := strings.TrimSpace(strings.Join(args[1:], " "))
				labeled, err := store.LabelItem(item.ID, label)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Labeled %s as %q\n", shortID(labeled.ID), labeled.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&staples, "staples", false, "Include common staple quick picks in the suggestions")
	return cmd
}

// findItem resolves an id or unique id prefix against the session items.
func findItem(store *session.Store, idArg string) (*scan.Item, error) {
	idArg = strings.TrimSpace(idArg)
	if idArg == "" {
		return nil, session.ErrItemNotFound
	}

	var match *scan.Item
	for _, item := range store.Items() {
		if item.ID == idArg {
			found := item
			return &found, nil
		}
		if strings.HasPrefix(item.ID, idArg) {
			if match != nil {
				return nil, fmt.Errorf("item id %q is ambiguous", idArg)
			}
			found := item
			match = &found
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", session.ErrItemNotFound, idArg)
	}
	return match, nil
}

func printCandidates(cmd *cobra.Command, ctx *commandContext, item scan.Item, staples bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n", scan.DisplayName(item), shortID(item.ID))
	if len(item.AISuggestions) > 0 {
		fmt.Fprintf(out, "Detected suggestions: %s\n", strings.Join(item.AISuggestions, ", "))
	}

	catalog := suggest.NewCatalog(cfg.Suggestions.Extra)
	candidates := catalog.Candidates(item.ContainerType, item.ContentType)
	fmt.Fprintf(out, "Candidates: %s\n", strings.Join(candidates, ", "))

	if staples {
		labels := make([]string, 0, len(suggest.CommonStaples))
		for _, staple := range suggest.CommonStaples {
			labels = append(labels, staple.Label)
		}
		fmt.Fprintf(out, "Staples: %s\n", strings.Join(labels, ", "))
	}

	fmt.Fprintf(out, "Commit with: fridgescan label %s <text>\n", shortID(item.ID))
	return nil
}
