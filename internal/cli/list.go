package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"bullprompt-backend/internal/controller"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		query  string
		tags   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List prompts, optionally filtered by text and tags",
		Args:    cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, v, err := a.controller(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if query != "" {
				v, _ = c.Dispatch(ctx, controller.Search(query))
			}
			var toggled []string
			for _, tag := range tags {
				if slices.Contains(toggled, tag) {
					continue
				}
				toggled = append(toggled, tag)
				v, _ = c.Dispatch(ctx, controller.ToggleTag(tag))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v.Cards)
			}
			printCards(cmd.OutOrStdout(), v)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text matched against name, prompt and tags")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "only show prompts carrying one of these tags (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matching records as JSON")
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			c, v, err := a.controller(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			for _, f := range v.TagFilters {
				fmt.Fprintln(cmd.OutOrStdout(), f.Label)
			}
			return nil
		}),
	}
}

func printCards(w io.Writer, v controller.View) {
	if v.Empty {
		fmt.Fprintln(w, "No prompts found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTAGS\tPREVIEW")
	for _, card := range v.Cards {
		preview := strings.Join(strings.Fields(card.Preview), " ")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", card.ID, card.Name, strings.Join(card.Tags, ","), preview)
	}
	_ = tw.Flush()
}
