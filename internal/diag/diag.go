// Package diag renders a compile error against its source line, printing a
// caret under the offending line the way CLI tools traditionally do. The
// format mirrors CompilerError.Format in the dws scripting compiler:
// the message first, then the numbered source line, then a caret line
// pointing at column 1 of that line (Flit's lexer and parser track line
// numbers only, not columns, so the caret always sits at the line's start).
package diag

import (
	"fmt"
	"strings"
)

// Diagnostic pairs a compile error's message with the line it occurred on.
type Diagnostic struct {
	Err  error
	Line int
}

// Format renders a Diagnostic against source, a caret-annotated string
// suitable for printing directly to stderr. If color is true, the message
// and caret are wrapped in ANSI red.
func Format(d Diagnostic, source string, color bool) string {
	lines := strings.Split(source, "\n")
	var b strings.Builder

	msg := d.Err.Error()
	if color {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(&b, msg)

	if d.Line >= 1 && d.Line <= len(lines) {
		srcLine := lines[d.Line-1]
		gutter := fmt.Sprintf("%5d | ", d.Line)
		fmt.Fprintf(&b, "%s%s\n", gutter, srcLine)
		caret := strings.Repeat(" ", len(gutter)) + "^"
		if color {
			caret = "\x1b[31m" + caret + "\x1b[0m"
		}
		fmt.Fprintln(&b, caret)
	}

	return b.String()
}
