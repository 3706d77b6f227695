package ast

import (
	"fmt"
	"strings"
)

// Dump renders prog as an indented tree, used by flitc's `parse` subcommand.
func Dump(prog *Program) string {
	var b strings.Builder
	for _, stmt := range prog.Stmts {
		dumpStmt(&b, stmt, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(b *strings.Builder, stmt Stmt, depth int) {
	indent(b, depth)
	switch s := stmt.(type) {
	case *Exit:
		b.WriteString("Exit\n")
		dumpExpr(b, s.Value, depth+1)
	case *Print:
		b.WriteString("Print\n")
		dumpExpr(b, s.Value, depth+1)
	case *Let:
		fmt.Fprintf(b, "Let %s\n", s.Name.Value)
		dumpExpr(b, s.Value, depth+1)
	case *Assign:
		fmt.Fprintf(b, "Assign %s\n", s.Name.Value)
		dumpExpr(b, s.Value, depth+1)
	case *Block:
		b.WriteString("Block\n")
		dumpScope(b, s.Body, depth+1)
	case *If:
		b.WriteString("If\n")
		dumpExpr(b, s.Cond, depth+1)
		dumpScope(b, s.Body, depth+1)
		if s.Pred != nil {
			dumpIfPred(b, s.Pred, depth+1)
		}
	case *While:
		b.WriteString("While\n")
		dumpExpr(b, s.Cond, depth+1)
		dumpScope(b, s.Body, depth+1)
	default:
		fmt.Fprintf(b, "<unknown stmt %T>\n", stmt)
	}
}

func dumpScope(b *strings.Builder, scope *Scope, depth int) {
	for _, stmt := range scope.Stmts {
		dumpStmt(b, stmt, depth)
	}
}

func dumpIfPred(b *strings.Builder, pred IfPred, depth int) {
	indent(b, depth)
	switch p := pred.(type) {
	case *Elif:
		b.WriteString("Elif\n")
		dumpExpr(b, p.Cond, depth+1)
		dumpScope(b, p.Body, depth+1)
		if p.Next != nil {
			dumpIfPred(b, p.Next, depth+1)
		}
	case *Else:
		b.WriteString("Else\n")
		dumpScope(b, p.Body, depth+1)
	}
}

func dumpExpr(b *strings.Builder, e *Expr, depth int) {
	indent(b, depth)
	if e.Bin != nil {
		dumpBin(b, e.Bin, depth)
		return
	}
	dumpTerm(b, e.Term, depth)
}

func dumpBin(b *strings.Builder, bin BinExpr, depth int) {
	var op string
	var lhs, rhs *Expr
	switch v := bin.(type) {
	case *Add:
		op, lhs, rhs = "+", v.LHS, v.RHS
	case *Sub:
		op, lhs, rhs = "-", v.LHS, v.RHS
	case *Mul:
		op, lhs, rhs = "*", v.LHS, v.RHS
	case *Div:
		op, lhs, rhs = "/", v.LHS, v.RHS
	}
	fmt.Fprintf(b, "BinExpr(%s)\n", op)
	dumpExpr(b, lhs, depth+1)
	dumpExpr(b, rhs, depth+1)
}

func dumpTerm(b *strings.Builder, term Term, depth int) {
	switch t := term.(type) {
	case *IntLit:
		fmt.Fprintf(b, "IntLit(%s)\n", t.Tok.Value)
	case *Ident:
		fmt.Fprintf(b, "Ident(%s)\n", t.Tok.Value)
	case *Paren:
		b.WriteString("Paren\n")
		dumpExpr(b, t.Expr, depth+1)
	}
}
