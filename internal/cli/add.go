package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		fields draftFlags
		lookup string
		pick   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the catalog",
		Long: `Add an item to the catalog. With --lookup the form is prefilled from the
metadata lookup (movies only); explicit field flags override the prefill.`,
		Example: `  tracker add --title Dune --type Book
  tracker add --lookup "dune part two" --status "In Progress" --progress 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modal := a.view.Modal()
			out := cmd.OutOrStdout()

			if err := a.view.AddNew(); err != nil {
				return err
			}
			defer func() { _ = modal.Cancel() }()

			if lookup != "" {
				if err := modal.Search(cmd.Context(), lookup); err != nil {
					return err
				}
				if notice := modal.Notice(); notice != "" {
					fmt.Fprintf(out, "Lookup: %s\n", notice)
				}
				if len(modal.Results()) > 0 {
					if err := modal.SelectCandidate(pick); err != nil {
						return fmt.Errorf("--pick %d: %w", pick, err)
					}
				}
			}

			if err := modal.EditDraft(func(d *domain.Draft) { fields.apply(cmd, d) }); err != nil {
				return err
			}

			item, err := modal.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Added:")
			printItem(out, item)
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().StringVar(&lookup, "lookup", "", "prefill from a metadata search")
	cmd.Flags().IntVar(&pick, "pick", 0, "index of the lookup result to use")
	return cmd
}
