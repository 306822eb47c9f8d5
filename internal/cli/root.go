package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/augray/ray/internal/config"
	"github.com/augray/ray/internal/dashboard"
	"github.com/augray/ray/internal/logview"
)

var (
	ErrNotListing           = errors.New("reference is a directory listing; use ls")
	ErrIndexNotDownloadable = errors.New("the log index has no download URL")
)

var (
	dashboardURL string
	pagePath     string
	token        string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "raylogs",
	Short: "Browse node logs through the dashboard log proxy",
	Long: `raylogs reads the log index and node log files and directories through
a dashboard's log proxy.

References are either "log_index" or an absolute node log URL. --page sets
the dashboard page the reference was taken from, which scopes requests to a
worker when the page sits below one.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dashboardURL, "dashboard", "", "dashboard base URL (default $RAYLOGS_DASHBOARD_URL or http://localhost:8265)")
	rootCmd.PersistentFlags().StringVar(&pagePath, "page", "", "dashboard page path the reference was taken from (default $RAYLOGS_PAGE or /)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token sent to the dashboard (default $RAYLOGS_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and skipped entries to stderr")
}

// settings merges RAYLOGS_* environment settings with command-line flags.
func settings() (config.CLISettings, error) {
	s, err := config.LoadCLI()
	if err != nil {
		return s, fmt.Errorf("load config: %w", err)
	}
	if dashboardURL != "" {
		s.DashboardURL = dashboardURL
	}
	if pagePath != "" {
		s.Page = pagePath
	}
	if token != "" {
		s.Token = token
	}
	return s, nil
}

func newFetcher(s config.CLISettings) (*logview.Fetcher, error) {
	client, err := dashboard.NewClient(s.DashboardURL, dashboard.WithToken(s.Token))
	if err != nil {
		return nil, err
	}
	return logview.NewFetcher(client, logview.WithBaseURL(client.BaseURL())), nil
}

func fetch(cmd *cobra.Command, raw string) (*logview.Content, error) {
	s, err := settings()
	if err != nil {
		return nil, err
	}
	fetcher, err := newFetcher(s)
	if err != nil {
		return nil, err
	}
	log.Printf("[raylogs] GET %s (page=%s)", logview.ResolveRequestPath(s.Page, raw), s.Page)
	return fetcher.Fetch(cmd.Context(), s.Page, raw)
}
