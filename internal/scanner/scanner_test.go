package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/bearpig/internal/token"
)

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize(`a*()[]?.-^|+\ ` + "\n{}")
	require.NoError(t, err)

	want := []token.Kind{
		token.Character, token.Star, token.ParenOpen, token.ParenClose,
		token.SquareOpen, token.SquareClose, token.Optional, token.Any,
		token.Dash, token.Caret, token.Alternative, token.Plus,
		token.Escape, token.Whitespace, token.Whitespace,
		token.Character, token.Character,
	}
	require.Len(t, tokens, len(want))
	for i, k := range want {
		assert.Equal(t, k, tokens[i].Kind, "token %d", i)
		assert.Equal(t, i, tokens[i].Column, "token %d", i)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeEscapeIsTwoTokens(t *testing.T) {
	tokens, err := Tokenize(`\*`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Escape, tokens[0].Kind)
	assert.Equal(t, token.Star, tokens[1].Kind)
	assert.Equal(t, byte('*'), tokens[1].Char)
}

func TestTokenizeRoundTrip(t *testing.T) {
	for _, pattern := range []string{"a|b", "([a-zA-Z]+|[0-9][0-9]?)+", `[abc\[]\[`} {
		tokens, err := Tokenize(pattern)
		require.NoError(t, err)
		assert.Equal(t, pattern, token.Text(tokens))
	}
}

func TestScannerNext(t *testing.T) {
	s := New("ab")
	assert.False(t, s.Done())
	assert.Equal(t, token.Token{Kind: token.Character, Column: 0, Char: 'a'}, s.Next())
	assert.Equal(t, token.Token{Kind: token.Character, Column: 1, Char: 'b'}, s.Next())
	assert.True(t, s.Done())
	assert.Equal(t, token.EOS, s.Next().Kind)
}
