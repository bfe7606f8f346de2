package cli

import (
	"github.com/spf13/cobra"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// draftFlags are the editable fields shared by add and edit. Only flags
// given on the command line touch the draft.
type draftFlags struct {
	title    string
	kind     string
	status   string
	rating   float64
	progress float64
	image    string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "title")
	cmd.Flags().StringVar(&f.kind, "type", "", "Movie, Book or Game")
	cmd.Flags().StringVar(&f.status, "status", "", `"To Do", "In Progress" or "Completed"`)
	cmd.Flags().Float64Var(&f.rating, "rating", 0, "rating from 0 to 10")
	cmd.Flags().Float64Var(&f.progress, "progress", 0, "progress from 0 to 100")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
}

func (f *draftFlags) apply(cmd *cobra.Command, d *domain.Draft) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		d.Title = f.title
	}
	if flags.Changed("type") {
		d.Type = domain.MediaType(f.kind)
	}
	if flags.Changed("status") {
		d.Status = domain.Status(f.status)
	}
	if flags.Changed("rating") {
		d.Rating = f.rating
	}
	if flags.Changed("progress") {
		d.Progress = f.progress
	}
	if flags.Changed("image") {
		d.ImageURL = f.image
	}
}
