package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	toks, err := tokenize("a(b|c)*.d")
	require.NoError(t, err)

	want := []tokenType{
		tChar, tLParen, tChar, tUnion, tChar, tRParen,
		tStar, tConcat, tChar, tEOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		require.Equal(t, typ, toks[i].typ, "token %d", i)
		require.Equal(t, i, toks[i].off, "offset of token %d", i)
	}
	require.Equal(t, byte('a'), toks[0].ch)
	require.Equal(t, byte('d'), toks[8].ch)
}

func TestLexerUnsupportedCharacter(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"ab#", 2},
		{"A", 0},
		{"a b", 1},
		{"(a|9)", 3},
	}
	for _, tt := range tests {
		_, err := tokenize(tt.input)
		require.Error(t, err, tt.input)
		var se *SyntaxError
		require.ErrorAs(t, err, &se)
		require.Equal(t, tt.offset, se.Offset, tt.input)
		require.Contains(t, se.Msg, "unsupported character")
	}
}

func TestLexerEmpty(t *testing.T) {
	toks, err := tokenize("")
	require.NoError(t, err)
	require.Equal(t, []token{{typ: tEOF}}, toks)
}
