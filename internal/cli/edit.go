package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

func newEditCmd(a *app) *cobra.Command {
	var fields draftFlags

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit a catalog item",
		Example: `  tracker edit 3f1c... --status Completed --progress 100`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.view.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := a.view.Edit(id); err != nil {
				return err
			}
			modal := a.view.Modal()
			defer func() { _ = modal.Cancel() }()

			if err := modal.EditDraft(func(d *domain.Draft) { fields.apply(cmd, d) }); err != nil {
				return err
			}
			item, err := modal.Submit(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Updated:")
			printItem(out, item)
			return nil
		},
	}

	fields.register(cmd)
	return cmd
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
