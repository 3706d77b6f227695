package cmd

import (
	"fmt"

	"github.com/flitlang/flitc/internal/ast"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.flit>",
	Short: "Parse a Flit source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		prog, err := parseSource(src)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(prog))
		return nil
	},
}
