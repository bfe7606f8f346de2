package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <query>",
		Short: "Search movie metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := a.client.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No results found")
				return nil
			}
			return printCandidates(out, candidates)
		},
	}
}
