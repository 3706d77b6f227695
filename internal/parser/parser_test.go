package parser_test

import (
	"testing"

	"github.com/flitlang/flitc/internal/arena"
	"github.com/flitlang/flitc/internal/ast"
	"github.com/flitlang/flitc/internal/lexer"
	"github.com/flitlang/flitc/internal/parser"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	prog, err := parser.New(tokens, arena.New(arena.DefaultCapacity)).ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestParseLetAndExit(t *testing.T) {
	prog := parseProgram(t, "let x = 5; exit(x);")
	require.Len(t, prog.Stmts, 2)

	let, ok := prog.Stmts[0].(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "x", let.Name.Value)
	lit, ok := let.Value.Term.(*ast.IntLit)
	require.True(t, ok)
	require.Equal(t, "5", lit.Tok.Value)

	exit, ok := prog.Stmts[1].(*ast.Exit)
	require.True(t, ok)
	ident, ok := exit.Value.Term.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", ident.Tok.Value)
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): Add(1, Mul(2, 3)).
	prog := parseProgram(t, "exit(1 + 2 * 3);")
	exit := prog.Stmts[0].(*ast.Exit)
	add, ok := exit.Value.Bin.(*ast.Add)
	require.True(t, ok)

	lhsLit, ok := add.LHS.Term.(*ast.IntLit)
	require.True(t, ok)
	require.Equal(t, "1", lhsLit.Tok.Value)

	mul, ok := add.RHS.Bin.(*ast.Mul)
	require.True(t, ok)
	mLHS := mul.LHS.Term.(*ast.IntLit)
	mRHS := mul.RHS.Term.(*ast.IntLit)
	require.Equal(t, "2", mLHS.Tok.Value)
	require.Equal(t, "3", mRHS.Tok.Value)
}

func TestLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2 should parse as (10 - 3) - 2, not 10 - (3 - 2).
	prog := parseProgram(t, "exit(10 - 3 - 2);")
	exit := prog.Stmts[0].(*ast.Exit)
	outer, ok := exit.Value.Bin.(*ast.Sub)
	require.True(t, ok)

	inner, ok := outer.LHS.Bin.(*ast.Sub)
	require.True(t, ok)
	require.Equal(t, "10", inner.LHS.Term.(*ast.IntLit).Tok.Value)
	require.Equal(t, "3", inner.RHS.Term.(*ast.IntLit).Tok.Value)
	require.Equal(t, "2", outer.RHS.Term.(*ast.IntLit).Tok.Value)
}

func TestParseIfElifElse(t *testing.T) {
	prog := parseProgram(t, `
		if (x) { exit(1); }
		elif (y) { exit(2); }
		else { exit(3); }
	`)
	ifStmt := prog.Stmts[0].(*ast.If)
	elif, ok := ifStmt.Pred.(*ast.Elif)
	require.True(t, ok)
	_, ok = elif.Next.(*ast.Else)
	require.True(t, ok)
}

func TestParseWhile(t *testing.T) {
	prog := parseProgram(t, "let i = 0; while (i) { i = i - 1; }")
	while, ok := prog.Stmts[1].(*ast.While)
	require.True(t, ok)
	require.Len(t, while.Body.Stmts, 1)
	_, ok = while.Body.Stmts[0].(*ast.Assign)
	require.True(t, ok)
}

func TestParseErrorMissingCloseParen(t *testing.T) {
	tokens, err := lexer.New("exit(5;").Tokenize()
	require.NoError(t, err)
	_, err = parser.New(tokens, arena.New(arena.DefaultCapacity)).ParseProgram()
	require.Error(t, err)
	require.EqualError(t, err, "[Parsing Error] Expected `)` on line 1")
}

func TestParseErrorEmptyExit(t *testing.T) {
	tokens, err := lexer.New("exit();").Tokenize()
	require.NoError(t, err)
	_, err = parser.New(tokens, arena.New(arena.DefaultCapacity)).ParseProgram()
	require.Error(t, err)
	require.EqualError(t, err, "[Parsing Error] Expected an expression on line 1")
}

func TestParseErrorExitAtEndOfInput(t *testing.T) {
	// "exit(" with nothing following: the reference compiler dereferences an
	// absent token here and crashes. The Go parser must not crash, and since
	// it never finds a term before hitting EOF, it reports a missing
	// expression rather than a missing close-paren (parseExpr returns before
	// the close-paren check is ever reached).
	tokens, err := lexer.New("exit(").Tokenize()
	require.NoError(t, err)
	_, err = parser.New(tokens, arena.New(arena.DefaultCapacity)).ParseProgram()
	require.Error(t, err)
	require.EqualError(t, err, "[Parsing Error] Expected an expression on line 1")
}
