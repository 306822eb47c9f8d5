package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/augray/ray/internal/logview"
)

var lsCmd = &cobra.Command{
	Use:   "ls [reference]",
	Short: "List a log directory (default: the log index)",
	Long: `List the entries of a log directory as name and link columns.
Without a reference the log index is listed. Non-listing responses are
printed as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	raw := logview.IndexPath
	if len(args) == 1 {
		raw = args[0]
	}

	content, err := fetch(cmd, raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !content.IsListing() {
		fmt.Fprint(out, content.Text)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range content.Entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Href)
	}
	return tw.Flush()
}
