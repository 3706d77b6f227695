package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ExitCodeError signals that a child process invoked by `flitc run` has
// already exited with a specific status. main propagates that status via
// os.Exit rather than printing it as a compiler error.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("program exited with status %d", e.Code)
}

var runCmd = &cobra.Command{
	Use:   "run <file.flit>",
	Short: "Compile and immediately execute a Flit program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpDir, err := os.MkdirTemp("", "flitc-run-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmpDir)

		exePath := filepath.Join(tmpDir, "program")
		prevOutput, prevKeepAsm, prevAsmOnly := buildOutput, buildKeepAsm, buildEmitAsmOnly
		buildOutput, buildKeepAsm, buildEmitAsmOnly = exePath, false, false
		defer func() { buildOutput, buildKeepAsm, buildEmitAsmOnly = prevOutput, prevKeepAsm, prevAsmOnly }()

		if err := runBuild(cmd, args[0], true); err != nil {
			return err
		}

		run := exec.CommandContext(cmd.Context(), exePath)
		run.Stdin = os.Stdin
		run.Stdout = cmd.OutOrStdout()
		run.Stderr = cmd.ErrOrStderr()

		if err := run.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &ExitCodeError{Code: exitErr.ExitCode()}
			}
			return err
		}
		return nil
	},
}
