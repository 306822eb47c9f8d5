package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augray/ray/internal/logview"
)

var download bool

var urlCmd = &cobra.Command{
	Use:   "url <reference>",
	Short: "Print the dashboard request path for a reference",
	Long: `Print the path the dashboard is asked for when reading a reference.
With --download, print the download URL instead; the log index has none.`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().BoolVarP(&download, "download", "d", false, "print the download URL")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	s, err := settings()
	if err != nil {
		return err
	}

	if !download {
		fmt.Fprintln(cmd.OutOrStdout(), logview.ResolveRequestPath(s.Page, args[0]))
		return nil
	}
	p, ok := logview.DownloadURL(s.Page, args[0])
	if !ok {
		return ErrIndexNotDownloadable
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
