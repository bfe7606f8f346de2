// Package cli implements the tracker command line client.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/tracker/internal/catalog/client"
	"github.com/narwhalmedia/tracker/internal/catalog/workflow"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

// AppName is the binary name.
const AppName = "tracker"

// EnvAPIURL names the environment variable holding the server URL.
const EnvAPIURL = "TRACKER_API_URL"

type app struct {
	apiURL  string
	verbose bool

	client *client.Client
	view   *workflow.CatalogView
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Track the movies, books and games you want to get through",
		Long: `Tracker is a command-line client for the media catalog server.
It lists, filters, adds, edits and deletes catalog items, and can prefill
new movies from the metadata lookup.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	defaultURL := os.Getenv(EnvAPIURL)
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api", defaultURL, "catalog server URL (env "+EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newLookupCmd(a),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init() error {
	var log interfaces.Logger = logger.NewNoop()
	if a.verbose {
		zl, err := logger.NewZapLogger(true)
		if err != nil {
			return err
		}
		log = zl
	}
	a.client = client.New(a.apiURL)
	a.view = workflow.NewCatalogView(a.client, a.client, log)
	return nil
}
