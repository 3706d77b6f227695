package lexer_test

import (
	"testing"

	"github.com/flitlang/flitc/internal/lexer"
	"github.com/flitlang/flitc/internal/token"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasicProgram(t *testing.T) {
	src := `let x = 5;
exit(x);
`
	tokens, err := lexer.New(src).Tokenize()
	require.NoError(t, err)

	want := []token.Kind{
		token.Let, token.Ident, token.Eq, token.IntLit, token.Semi,
		token.Exit, token.OpenParen, token.Ident, token.CloseParen, token.Semi,
		token.EOF,
	}
	require.Len(t, tokens, len(want))
	for i, k := range want {
		require.Equalf(t, k, tokens[i].Kind, "token %d", i)
	}
	require.Equal(t, "x", tokens[1].Value)
	require.Equal(t, "5", tokens[3].Value)
}

func TestTokenizeSkipsComments(t *testing.T) {
	src := "// a comment\nlet x = 1; /* block\ncomment */ exit(x);"
	tokens, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	require.Equal(t, token.Let, tokens[0].Kind)
	// the block comment spans a newline, so `exit` should be on line 3
	var exitTok token.Token
	for _, tok := range tokens {
		if tok.Kind == token.Exit {
			exitTok = tok
		}
	}
	require.Equal(t, 3, exitTok.Line)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := lexer.New("let x = 5 @ 3;").Tokenize()
	require.Error(t, err)
	require.EqualError(t, err, "[Lexing Error] Unexpected character '@' on line 1")
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	tokens, err := lexer.New("while if elif else print let exit").Tokenize()
	require.NoError(t, err)
	want := []token.Kind{token.While, token.If, token.Elif, token.Else, token.Print, token.Let, token.Exit, token.EOF}
	for i, k := range want {
		require.Equal(t, k, tokens[i].Kind)
	}
}
