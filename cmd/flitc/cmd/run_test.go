package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRelaysChildExitCode(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "program.flit")
	require.NoError(t, os.WriteFile(srcPath, []byte("exit(7);"), 0o644))

	rootCmd.SetArgs([]string{"run", srcPath})
	err := rootCmd.Execute()
	require.Error(t, err)

	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr), "expected *ExitCodeError, got %T: %v", err, err)
	require.Equal(t, 7, exitErr.Code)
}

func TestRunRelaysZeroExitCode(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "program.flit")
	require.NoError(t, os.WriteFile(srcPath, []byte("print(42); exit(0);"), 0o644))

	rootCmd.SetArgs([]string{"run", srcPath})
	require.NoError(t, rootCmd.Execute())
}
