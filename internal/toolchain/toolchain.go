// Package toolchain shells out to the system's NASM assembler and linker to
// turn generated assembly into an executable, the same way the reference
// Flit compiler hands its output to `nasm` and `ld` as separate processes
// rather than embedding an assembler or linker.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// RunError wraps a failed external command, keeping its captured stderr for
// diagnostics.
type RunError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *RunError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v\n%s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Assemble runs `nasm -felf64 asmPath -o objPath`.
func Assemble(ctx context.Context, asmPath, objPath string) error {
	return run(ctx, "nasm", "-felf64", asmPath, "-o", objPath)
}

// Link runs `ld objPath -o outPath`.
func Link(ctx context.Context, objPath, outPath string) error {
	return run(ctx, "ld", objPath, "-o", outPath)
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("%s timed out: %w", name, ctx.Err())
		}
		return &RunError{
			Command: fmt.Sprintf("%s %v", name, args),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}
	return nil
}
