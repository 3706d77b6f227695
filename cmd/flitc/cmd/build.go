package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flitlang/flitc/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildOutput      string
	buildKeepAsm     bool
	buildEmitAsmOnly bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file.flit>",
	Short: "Compile a Flit program to a native executable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, args[0], false)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "out", "path of the produced executable")
	buildCmd.Flags().BoolVar(&buildKeepAsm, "keep-asm", false, "keep the intermediate .asm/.o files instead of removing them")
	buildCmd.Flags().BoolVar(&buildEmitAsmOnly, "emit-asm-only", false, "stop after writing the .asm file, skipping assemble and link")
}

// runBuild runs the same pipeline as the reference compiler:
// source.flit -> out.asm -> nasm -felf64 -> ld -o out. Unlike the reference,
// it removes the .asm and .o files after linking unless --keep-asm is set,
// and prints the executable's path unless quiet is true. The flags add
// output-path control and intermediate-file bookkeeping on top of that.
func runBuild(cmd *cobra.Command, srcPath string, quiet bool) error {
	src, err := readSource(srcPath)
	if err != nil {
		return err
	}

	asm, err := generate(src)
	if err != nil {
		return err
	}

	asmPath := buildOutput + ".asm"
	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("flitc: cannot write %s: %w", asmPath, err)
	}
	if logger != nil {
		logger.Debug("wrote assembly", "path", asmPath)
	}

	if buildEmitAsmOnly {
		return nil
	}

	objPath := strings.TrimSuffix(asmPath, ".asm") + ".o"
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := toolchain.Assemble(ctx, asmPath, objPath); err != nil {
		return fmt.Errorf("flitc: assembling %s: %w", asmPath, err)
	}
	if err := toolchain.Link(ctx, objPath, buildOutput); err != nil {
		return fmt.Errorf("flitc: linking %s: %w", objPath, err)
	}

	if !buildKeepAsm {
		os.Remove(asmPath)
		os.Remove(objPath)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), buildOutput)
	}
	return nil
}
