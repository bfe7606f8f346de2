package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

func printItems(w io.Writer, items []domain.MediaItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tSTATUS\tRATING\tPROGRESS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s%%\n",
			it.ID, it.Title, it.Type, it.Status, formatNumber(it.Rating), formatNumber(it.Progress))
	}
	return tw.Flush()
}

func printItem(w io.Writer, item *domain.MediaItem) {
	fmt.Fprintf(w, "%s  %s (%s)\n", item.ID, item.Title, item.Type)
	fmt.Fprintf(w, "  status:   %s\n", item.Status)
	fmt.Fprintf(w, "  rating:   %s\n", formatNumber(item.Rating))
	fmt.Fprintf(w, "  progress: %s%%\n", formatNumber(item.Progress))
	if item.ImageURL != "" {
		fmt.Fprintf(w, "  image:    %s\n", item.ImageURL)
	}
}

func printCandidates(w io.Writer, candidates []domain.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tYEAR\tRATING")
	for i, c := range candidates {
		year := "-"
		if c.ReleaseYear > 0 {
			year = strconv.Itoa(c.ReleaseYear)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, c.Title, year, formatNumber(domain.RoundRating(c.AverageRating)))
	}
	return tw.Flush()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
