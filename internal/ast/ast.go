// Package ast defines Flit's abstract syntax tree: a closed set of
// tagged-variant node shapes, each implemented as a small struct behind a
// marker interface so the code generator can dispatch on concrete type with
// a type switch instead of open polymorphism. The parser allocates the term
// nodes (IntLit, Ident, Paren) through an arena.Arena (see internal/arena);
// all other nodes are ordinary Go allocations that the arena does not track.
package ast

import "github.com/flitlang/flitc/internal/token"

// Term is one of IntLit, Ident, or Paren.
type Term interface {
	termNode()
}

// IntLit is an integer literal term.
type IntLit struct {
	Tok token.Token
}

func (*IntLit) termNode() {}

// Ident is an identifier reference term.
type Ident struct {
	Tok token.Token
}

func (*Ident) termNode() {}

// Paren is a parenthesized expression term.
type Paren struct {
	Expr *Expr
}

func (*Paren) termNode() {}

// BinExpr is one of Add, Sub, Mul, Div, each carrying a left and right
// operand expression.
type BinExpr interface {
	binExprNode()
}

// Add is lhs + rhs.
type Add struct {
	LHS, RHS *Expr
}

func (*Add) binExprNode() {}

// Sub is lhs - rhs.
type Sub struct {
	LHS, RHS *Expr
}

func (*Sub) binExprNode() {}

// Mul is lhs * rhs.
type Mul struct {
	LHS, RHS *Expr
}

func (*Mul) binExprNode() {}

// Div is lhs / rhs.
type Div struct {
	LHS, RHS *Expr
}

func (*Div) binExprNode() {}

// Expr is either a Term or a BinExpr. It is a concrete struct (not an
// interface) with exactly one of its two fields set; the parser builds a
// new Expr for every operator it folds in during precedence climbing — see
// internal/parser.
type Expr struct {
	Term Term    // set when Bin is nil
	Bin  BinExpr // set when Term is nil
}

// Scope is an ordered sequence of statements delimited by `{` `}`.
type Scope struct {
	Stmts []Stmt
}

// IfPred is one of Elif or Else — the tail of an if/elif*/else? chain.
type IfPred interface {
	ifPredNode()
}

// Elif is `elif (Cond) Body` with an optional further predicate.
type Elif struct {
	Cond *Expr
	Body *Scope
	Next IfPred // nil if this is the last elif
}

func (*Elif) ifPredNode() {}

// Else is the unconditional tail of an if chain.
type Else struct {
	Body *Scope
}

func (*Else) ifPredNode() {}

// Stmt is one of Exit, Print, Let, Assign, Block, If, While.
type Stmt interface {
	stmtNode()
}

// Exit is `exit(Expr);`.
type Exit struct {
	Value *Expr
}

func (*Exit) stmtNode() {}

// Print is `print(Expr);`.
type Print struct {
	Value *Expr
}

func (*Print) stmtNode() {}

// Let is `let Ident = Expr;`, introducing a new live variable.
type Let struct {
	Name  token.Token
	Value *Expr
}

func (*Let) stmtNode() {}

// Assign is `Ident = Expr;`, overwriting an existing live variable.
type Assign struct {
	Name  token.Token
	Value *Expr
}

func (*Assign) stmtNode() {}

// Block is a bare `{ ... }` scope used as a statement.
type Block struct {
	Body *Scope
}

func (*Block) stmtNode() {}

// If is `if (Expr) Scope [IfPred]?`.
type If struct {
	Cond *Expr
	Body *Scope
	Pred IfPred // nil if there is no elif/else tail
}

func (*If) stmtNode() {}

// While is `while (Expr) Scope`.
type While struct {
	Cond *Expr
	Body *Scope
}

func (*While) stmtNode() {}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
}
