// Package parser implements Flit's recursive-descent, precedence-climbing
// parser.
//
// The parser is LL with up to three tokens of lookahead, used to decide
// between `exit (`, `let ident =`, a bare `ident =` assignment, `print (`,
// a bare `{` block, `if`, and `while` when dispatching parseStmt. Term nodes
// (IntLit, Ident, Paren) are allocated from the arena.Arena handed to New and
// count against its capacity; expression, operator, scope, predicate and
// statement nodes are plain Go allocations that the arena does not count.
//
// Expressions are parsed with a single precedence-climbing loop (see
// parseExpr) rather than a cascade of parseAdd/parseMul functions: adding a
// new binary operator only means adding an entry to the token package's
// precedence table.
package parser

import (
	"fmt"

	"github.com/flitlang/flitc/internal/arena"
	"github.com/flitlang/flitc/internal/ast"
	"github.com/flitlang/flitc/internal/token"
)

// ParseError reports a mismatch between an expected and an actual token.
// Line is the line of the most recently consumed token, matching spec
// wording: "Expected X on line N".
type ParseError struct {
	Expected string
	Line     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[Parsing Error] Expected %s on line %d", e.Expected, e.Line)
}

// Parser turns a token sequence into a Program, failing fast on the first
// mismatch.
type Parser struct {
	tokens []token.Token
	index  int
	arena  *arena.Arena
}

// New creates a Parser over tokens, allocating AST nodes from a.
func New(tokens []token.Token, a *arena.Arena) *Parser {
	return &Parser{tokens: tokens, arena: a}
}

// peek returns the token offset tokens ahead of the cursor, or the final EOF
// token if that would run past the end (the token stream always ends in
// EOF, so peek never needs an ok-bool — it simply saturates).
func (p *Parser) peek(offset int) token.Token {
	i := p.index + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// consume returns the current token and advances the cursor.
func (p *Parser) consume() token.Token {
	tok := p.peek(0)
	if p.index < len(p.tokens)-1 {
		p.index++
	}
	return tok
}

// lastLine is the line of the most recently consumed token — the line
// ParseError reports, per spec §4.3.
func (p *Parser) lastLine() int {
	if p.index == 0 {
		return p.peek(0).Line
	}
	return p.tokens[p.index-1].Line
}

// tryTake consumes the current token and returns it if it matches kind.
func (p *Parser) tryTake(kind token.Kind) (token.Token, bool) {
	if p.peek(0).Kind == kind {
		return p.consume(), true
	}
	return token.Token{}, false
}

// expect consumes the current token if it matches kind, failing with a
// ParseError (citing what) otherwise.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	if tok, ok := p.tryTake(kind); ok {
		return tok, nil
	}
	return token.Token{}, &ParseError{Expected: what, Line: p.lastLine()}
}

// ParseProgram parses the whole token stream into a Program, failing on the
// first statement that cannot be parsed.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.peek(0).Kind != token.EOF {
		stmt, ok, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Expected: "statement", Line: p.lastLine()}
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// parseTerm parses an IntLit, Ident, or parenthesized expression term. ok is
// false (no error) if the current token cannot start a term at all.
func (p *Parser) parseTerm() (ast.Term, bool, error) {
	if tok, ok := p.tryTake(token.IntLit); ok {
		n := arena.Alloc[ast.IntLit](p.arena)
		n.Tok = tok
		return n, true, nil
	}
	if tok, ok := p.tryTake(token.Ident); ok {
		n := arena.Alloc[ast.Ident](p.arena)
		n.Tok = tok
		return n, true, nil
	}
	if _, ok := p.tryTake(token.OpenParen); ok {
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if inner == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, false, err
		}
		n := arena.Alloc[ast.Paren](p.arena)
		n.Expr = inner
		return n, true, nil
	}
	return nil, false, nil
}

// parseExpr parses an expression using precedence climbing: a term is
// parsed as the initial left-hand side, then the loop folds in every
// following binary operator whose precedence is at least minPrec,
// recursing with minPrec+1 to parse its right operand. This yields
// left-associative trees and resolves "+ -" (precedence 0) against
// "* /" (precedence 1) correctly. Returns nil (no error) if there is no
// term at all at the current position.
func (p *Parser) parseExpr(minPrec int) (*ast.Expr, error) {
	term, ok, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	lhs := &ast.Expr{Term: term}

	for {
		opTok := p.peek(0)
		prec, isBin := token.BinaryPrecedence(opTok.Kind)
		if !isBin || prec < minPrec {
			break
		}
		p.consume()

		rhs, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}

		folded := &ast.Expr{Term: lhs.Term, Bin: lhs.Bin}
		bin, err := makeBinExpr(opTok.Kind, folded, rhs)
		if err != nil {
			return nil, err
		}
		lhs = &ast.Expr{Bin: bin}
	}
	return lhs, nil
}

func makeBinExpr(kind token.Kind, lhs, rhs *ast.Expr) (ast.BinExpr, error) {
	switch kind {
	case token.Plus:
		return &ast.Add{LHS: lhs, RHS: rhs}, nil
	case token.Minus:
		return &ast.Sub{LHS: lhs, RHS: rhs}, nil
	case token.Multi:
		return &ast.Mul{LHS: lhs, RHS: rhs}, nil
	case token.Div:
		return &ast.Div{LHS: lhs, RHS: rhs}, nil
	default:
		return nil, fmt.Errorf("parser: %s is not a binary operator", kind)
	}
}

// parseScope parses a `{ ... }` block of statements. Returns nil (no error)
// if there is no leading `{`.
func (p *Parser) parseScope() (*ast.Scope, bool, error) {
	if _, ok := p.tryTake(token.OpenCurly); !ok {
		return nil, false, nil
	}
	scope := &ast.Scope{}
	for p.peek(0).Kind != token.CloseCurly {
		if p.peek(0).Kind == token.EOF {
			return nil, false, &ParseError{Expected: "`}`", Line: p.lastLine()}
		}
		stmt, ok, err := p.parseStmt()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &ParseError{Expected: "statement", Line: p.lastLine()}
		}
		scope.Stmts = append(scope.Stmts, stmt)
	}
	p.consume() // `}`
	return scope, true, nil
}

// parseIfPred parses the `elif`/`else` tail of an if chain. Returns nil (no
// error) if the current token is neither.
func (p *Parser) parseIfPred() (ast.IfPred, error) {
	if _, ok := p.tryTake(token.Elif); ok {
		if _, err := p.expect(token.OpenParen, "`(`"); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if cond == nil {
			return nil, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, err
		}
		body, ok, err := p.parseScope()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Expected: "`{`", Line: p.lastLine()}
		}
		next, err := p.parseIfPred()
		if err != nil {
			return nil, err
		}
		return &ast.Elif{Cond: cond, Body: body, Next: next}, nil
	}
	if _, ok := p.tryTake(token.Else); ok {
		body, ok, err := p.parseScope()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Expected: "`{`", Line: p.lastLine()}
		}
		return &ast.Else{Body: body}, nil
	}
	return nil, nil
}

// parseStmt dispatches on up to three tokens of lookahead. Returns ok=false
// (no error) when the current token starts no statement at all — callers
// decide whether that's expected (end of a scope/program) or an error.
func (p *Parser) parseStmt() (ast.Stmt, bool, error) {
	switch {
	case p.peek(0).Kind == token.Exit && p.peek(1).Kind == token.OpenParen:
		p.consume() // exit
		p.consume() // (
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, false, err
		}
		if _, err := p.expect(token.Semi, "`;`"); err != nil {
			return nil, false, err
		}
		return &ast.Exit{Value: value}, true, nil

	case p.peek(0).Kind == token.Let && p.peek(1).Kind == token.Ident && p.peek(2).Kind == token.Eq:
		p.consume() // let
		name := p.consume()
		p.consume() // =
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.Semi, "`;`"); err != nil {
			return nil, false, err
		}
		return &ast.Let{Name: name, Value: value}, true, nil

	case p.peek(0).Kind == token.Ident && p.peek(1).Kind == token.Eq:
		name := p.consume()
		p.consume() // =
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.Semi, "`;`"); err != nil {
			return nil, false, err
		}
		return &ast.Assign{Name: name, Value: value}, true, nil

	case p.peek(0).Kind == token.Print && p.peek(1).Kind == token.OpenParen:
		p.consume() // print
		p.consume() // (
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, false, err
		}
		if _, err := p.expect(token.Semi, "`;`"); err != nil {
			return nil, false, err
		}
		return &ast.Print{Value: value}, true, nil

	case p.peek(0).Kind == token.OpenCurly:
		body, ok, err := p.parseScope()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		return &ast.Block{Body: body}, true, nil

	case p.peek(0).Kind == token.If:
		p.consume()
		if _, err := p.expect(token.OpenParen, "`(`"); err != nil {
			return nil, false, err
		}
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if cond == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, false, err
		}
		body, ok, err := p.parseScope()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &ParseError{Expected: "`{`", Line: p.lastLine()}
		}
		pred, err := p.parseIfPred()
		if err != nil {
			return nil, false, err
		}
		return &ast.If{Cond: cond, Body: body, Pred: pred}, true, nil

	case p.peek(0).Kind == token.While:
		p.consume()
		if _, err := p.expect(token.OpenParen, "`(`"); err != nil {
			return nil, false, err
		}
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, false, err
		}
		if cond == nil {
			return nil, false, &ParseError{Expected: "an expression", Line: p.lastLine()}
		}
		if _, err := p.expect(token.CloseParen, "`)`"); err != nil {
			return nil, false, err
		}
		body, ok, err := p.parseScope()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &ParseError{Expected: "`{`", Line: p.lastLine()}
		}
		return &ast.While{Cond: cond, Body: body}, true, nil

	default:
		return nil, false, nil
	}
}
