// Command flitc compiles Flit source files to native Linux executables.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/flitlang/flitc/cmd/flitc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
