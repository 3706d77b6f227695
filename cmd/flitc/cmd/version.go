package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the flitc release version, overridable at link time with
// -ldflags "-X github.com/flitlang/flitc/cmd/flitc/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print flitc's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "flitc "+Version)
		return nil
	},
}
