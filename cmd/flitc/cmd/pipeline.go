package cmd

import (
	"fmt"
	"os"

	"github.com/flitlang/flitc/internal/arena"
	"github.com/flitlang/flitc/internal/ast"
	"github.com/flitlang/flitc/internal/codegen"
	"github.com/flitlang/flitc/internal/diag"
	"github.com/flitlang/flitc/internal/lexer"
	"github.com/flitlang/flitc/internal/parser"
	"github.com/flitlang/flitc/internal/token"
)

// readSource reads the Flit program at path, failing with a usage-style
// error if it can't be opened.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("flitc: cannot read %s: %w", path, err)
	}
	return string(data), nil
}

// lexSource tokenizes src, wrapping a lex failure as a formatted
// Diagnostic against src.
func lexSource(src string) ([]token.Token, error) {
	tokens, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, reportDiag(err, src)
	}
	return tokens, nil
}

// parseSource lexes and parses src into a Program, using its own private
// arena (one arena per compile, matching the reference compiler's
// single-lifetime AST).
func parseSource(src string) (*ast.Program, error) {
	tokens, err := lexSource(src)
	if err != nil {
		return nil, err
	}
	a := arena.New(arena.DefaultCapacity)
	prog, err := parser.New(tokens, a).ParseProgram()
	if err != nil {
		return nil, reportDiag(err, src)
	}
	return prog, nil
}

// lineOf extracts the Line field from any compiler error type that carries
// one, for diag.Format.
func lineOf(err error) (int, bool) {
	switch e := err.(type) {
	case *lexer.LexError:
		return e.Line, true
	case *parser.ParseError:
		return e.Line, true
	case *codegen.SemanticError:
		return e.Line, true
	}
	return 0, false
}

// generate parses and lowers src to NASM assembly text.
func generate(src string) (string, error) {
	prog, err := parseSource(src)
	if err != nil {
		return "", err
	}
	asm, err := codegen.New().Generate(prog)
	if err != nil {
		return "", reportDiag(err, src)
	}
	return asm, nil
}

// reportDiag formats err as a caret diagnostic against src when it carries a
// line number, otherwise returns err unchanged.
func reportDiag(err error, src string) error {
	line, ok := lineOf(err)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", diag.Format(diag.Diagnostic{Err: err, Line: line}, src, false))
}
