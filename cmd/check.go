// File: cmd/check.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd verifies that the declared include order still matches the
// headers on disk, without producing any output file.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the declared include order against include/",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAmalgamator()
		if err != nil {
			return err
		}
		if err := a.Check(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Include order is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
