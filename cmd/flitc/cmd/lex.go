package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.flit>",
	Short: "Tokenize a Flit source file and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, err := lexSource(src)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			fmt.Fprintln(out, tok.String())
		}
		return nil
	},
}
