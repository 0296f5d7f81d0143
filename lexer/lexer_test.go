package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/token"
)

func TestLexer_Tokens(t *testing.T) {
	l := New([]byte(`{ node(id: "foo") }`), 0)

	var tokens []token.Token
	var literals []string
	for l.Scan() {
		tokens = append(tokens, l.Token())
		literals = append(literals, l.Literal())
	}
	assert.Empty(t, l.Errors())
	assert.Equal(t, []token.Token{
		token.PUNCTUATOR, token.NAME, token.PUNCTUATOR, token.NAME, token.PUNCTUATOR,
		token.STRING_VALUE, token.PUNCTUATOR, token.PUNCTUATOR,
	}, tokens)
	assert.Equal(t, []string{"{", "node", "(", "id", ":", `"foo"`, ")", "}"}, literals)
}

func TestLexer_ScanIgnored(t *testing.T) {
	l := New([]byte("{ }"), ScanIgnored)
	var tokens []token.Token
	for l.Scan() {
		tokens = append(tokens, l.Token())
	}
	assert.Equal(t, []token.Token{token.PUNCTUATOR, token.WHITE_SPACE, token.PUNCTUATOR}, tokens)
}

func TestLexer_PositionMode(t *testing.T) {
	l := New([]byte("{\n  a\n}"), PositionMode)
	require.True(t, l.Scan())
	assert.Equal(t, token.Position{Line: 1, Column: 1}, l.Position())
	require.True(t, l.Scan())
	assert.Equal(t, token.Position{Line: 2, Column: 3}, l.Position())

	l2 := New([]byte("{\n  a\n}"), 0)
	require.True(t, l2.Scan())
	assert.False(t, l2.Position().IsValid())
}

func TestLexer_Numbers(t *testing.T) {
	for _, tc := range []struct {
		src  string
		kind token.Token
	}{
		{"0", token.INT_VALUE},
		{"42", token.INT_VALUE},
		{"-7", token.INT_VALUE},
		{"3.14", token.FLOAT_VALUE},
		{"1e10", token.FLOAT_VALUE},
		{"1.5e-3", token.FLOAT_VALUE},
	} {
		l := New([]byte(tc.src), 0)
		require.True(t, l.Scan(), tc.src)
		assert.Equal(t, tc.kind, l.Token(), tc.src)
		assert.Equal(t, tc.src, l.Literal(), tc.src)
		assert.Empty(t, l.Errors(), tc.src)
	}
}

func TestLexer_LeadingZeroIntegerIsRejected(t *testing.T) {
	l := New([]byte("042"), 0)
	for l.Scan() {
	}
	require.NotEmpty(t, l.Errors())
	assert.Contains(t, l.Errors()[0].Message, "leading zero")
}

func TestLexer_StringEscapes(t *testing.T) {
	l := New([]byte(`"a\n\tbA"`), 0)
	require.True(t, l.Scan())
	assert.Equal(t, token.STRING_VALUE, l.Token())
	assert.Equal(t, "a\n\tbA", l.StringValue())
	assert.Empty(t, l.Errors())
}

func TestLexer_UnterminatedStringIsAnError(t *testing.T) {
	l := New([]byte(`"abc`), 0)
	for l.Scan() {
	}
	require.NotEmpty(t, l.Errors())
}

func TestLexer_BlockStringsAreNotSupported(t *testing.T) {
	l := New([]byte(`"""abc"""`), 0)
	for l.Scan() {
	}
	require.NotEmpty(t, l.Errors())
	assert.Contains(t, l.Errors()[0].Message, "block strings")
}

func TestLexer_IllegalCharacter(t *testing.T) {
	l := New([]byte("{😃}"), 0)
	var tokens []token.Token
	for l.Scan() {
		tokens = append(tokens, l.Token())
	}
	assert.Equal(t, []token.Token{token.PUNCTUATOR, token.PUNCTUATOR}, tokens)
	require.Len(t, l.Errors(), 1)
}

// TestLexer_Totality exercises spec §8's "lexer totality" property: Scan never panics and always
// terminates, even over arbitrary byte garbage, because isDone caps accumulated errors.
func TestLexer_Totality(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02",
		"{{{{{{{{{{",
		"\"\\",
		"............",
		"-----",
		string([]byte{0xff, 0xfe, 0xfd}),
	}
	for _, src := range inputs {
		assert.NotPanics(t, func() {
			l := New([]byte(src), PositionMode)
			for l.Scan() {
			}
		}, "%q", src)
	}
}
