package token_test

import (
	"testing"

	"github.com/flitlang/flitc/internal/token"
	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	kind, ok := token.Lookup("while")
	require.True(t, ok)
	require.Equal(t, token.While, kind)
}

func TestLookupNonKeyword(t *testing.T) {
	_, ok := token.Lookup("counter")
	require.False(t, ok)
}

func TestBinaryPrecedence(t *testing.T) {
	p, ok := token.BinaryPrecedence(token.Multi)
	require.True(t, ok)
	require.Equal(t, 1, p)

	p, ok = token.BinaryPrecedence(token.Plus)
	require.True(t, ok)
	require.Equal(t, 0, p)

	_, ok = token.BinaryPrecedence(token.Semi)
	require.False(t, ok)
}

func TestKindStringIsQuotedForPunctuation(t *testing.T) {
	require.Equal(t, "`;`", token.Semi.String())
	require.Equal(t, "identifier", token.Ident.String())
}
