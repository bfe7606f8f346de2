package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

func newListCmd(a *app) *cobra.Command {
	var (
		search   string
		category string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog items, newest first",
		Long:    `List catalog items. --search filters titles case-insensitively and --category limits the list to All, Movie, Book or Game.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := domain.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q (want All, Movie, Book or Game)", category)
			}

			if err := a.view.Refresh(cmd.Context()); err != nil {
				return err
			}
			a.view.SetSearchTerm(search)
			a.view.SetCategory(c)

			out := cmd.OutOrStdout()
			if a.view.IsEmpty() {
				if len(a.view.State().Items) == 0 {
					fmt.Fprintln(out, "Your catalog is empty. Add something with `tracker add`.")
				} else {
					fmt.Fprintln(out, "No media matches the current filters.")
				}
				return nil
			}
			return printItems(out, a.view.Visible())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive title filter")
	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll), "All, Movie, Book or Game")
	return cmd
}
