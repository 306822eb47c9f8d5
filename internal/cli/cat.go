package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <reference>",
	Short: "Print a log file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	content, err := fetch(cmd, args[0])
	if err != nil {
		return err
	}
	if content.IsListing() {
		return ErrNotListing
	}
	fmt.Fprint(cmd.OutOrStdout(), content.Text)
	return nil
}
