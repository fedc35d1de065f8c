package bearpig

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/nfagen"
)

func TestPipeline(t *testing.T) {
	tokens, err := Tokenize("[a-z]+@[a-z]+")
	require.NoError(t, err)
	require.Len(t, tokens, 13)

	root, err := Parse(tokens)
	require.NoError(t, err)

	n, warnings, err := Generate(root)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.True(t, ExactMatch(n, "bob@example").Success)
	assert.False(t, ExactMatch(n, "bob@").Success)

	m := FindFirstMatch(n, "mail bob@example now")
	require.True(t, m.Success)
	assert.Equal(t, 5, m.Start)
	assert.Equal(t, "bob@example", m.Text)

	all := FindAllMatches(n, "a@b c@d")
	require.Len(t, all, 2)
	assert.Equal(t, "a@b", all[0].Text)
	assert.Equal(t, "c@d", all[1].Text)
}

func TestParseErrorUnwraps(t *testing.T) {
	_, err := Compile("(ab")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "parseGroup", perr.Func)
	assert.True(t, perr.EndOfInput)
	assert.Contains(t, err.Error(), "failed to parse pattern")
}

func TestInvalidRangeUnwraps(t *testing.T) {
	_, err := Compile("[z-a]")
	require.Error(t, err)

	var rerr *RangeDiagnostic
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, nfagen.InvalidRange, rerr.Kind)
	assert.Equal(t, "[z-a]", rerr.Source)
}

func TestCompileWarnings(t *testing.T) {
	var sink diag.Collector
	re, err := Compile("[A-z]", WithSink(&sink))
	require.NoError(t, err)

	require.Len(t, re.Warnings(), 1)
	assert.Equal(t, nfagen.ConfusingRange, re.Warnings()[0].Kind)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "[A-z]", sink.Diagnostics[0].Source)
	assert.Equal(t, " ^^^", sink.Diagnostics[0].Marker())
}

func TestCompileKeepsCallerOptions(t *testing.T) {
	var sink diag.Collector
	opts := make([]Option, 1, 2)
	opts[0] = WithSink(&sink)
	spare := opts[:2]
	spare[1] = WithLogger(nil)

	_, err := Compile("[A-z]", opts...)
	require.NoError(t, err)

	var o options
	spare[1](&o)
	assert.Empty(t, o.source, "caller's backing array was overwritten")
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "[A-z]", sink.Diagnostics[0].Source)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("a|") })
	assert.NotPanics(t, func() { MustCompile("a|b") })
}

func TestRegexMatching(t *testing.T) {
	re := MustCompile("([a-zA-Z]+|[0-9][0-9]?)+")
	input := "aaaaaabcbcbabcbcbacbCBACBCBacbcbacb09090abCBab09cb0a)0"

	assert.False(t, re.MatchString(input))
	assert.True(t, re.MatchString("abc09"))

	all := re.FindAll(input)
	require.Len(t, all, 2)
	assert.Equal(t, 52, all[0].Length)
	assert.Equal(t, input[:52], all[0].Text)
	assert.Equal(t, 53, all[1].Start)
	assert.Equal(t, "0", all[1].Text)

	first := re.FindFirst(")x")
	require.True(t, first.Success)
	assert.Equal(t, 1, first.Start)
}

func TestRegexAccessors(t *testing.T) {
	re := MustCompile("a(b|c)*")

	assert.Equal(t, "a(b|c)*", re.String())
	assert.Len(t, re.Tokens(), 7)
	assert.NotNil(t, re.AST())
	assert.Greater(t, re.NFA().Len(), 1)

	tokens := re.Tokens()
	tokens[0].Char = 'z'
	assert.Equal(t, byte('a'), re.Tokens()[0].Char)
}

func TestSpans(t *testing.T) {
	re := MustCompile("[0-9]+")

	spans := re.Spans("a12 b3 c")
	require.Len(t, spans, 2)
	assert.Equal(t, 1, spans[0].Start)
	assert.Equal(t, 2, spans[0].Length)
	assert.Equal(t, 5, spans[1].Start)
	assert.Equal(t, 1, spans[1].Length)

	assert.Nil(t, re.Spans("none"))
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		template string
		want     string
	}{
		{"[0-9]+", "a1 b22 c", "#", "a# b# c"},
		{"[0-9]+", "a1 b22 c", "<$0>", "a<1> b<22> c"},
		{"[a-z]+", "cost 5", "$$$0", "$cost 5"},
		{"x", "none", "y", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.template, func(t *testing.T) {
			got, err := MustCompile(tt.pattern).ReplaceAll(tt.input, tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MustCompile("a").ReplaceAll("a", "$1")
	assert.Error(t, err)
}

func TestReplacer(t *testing.T) {
	fn, err := MustCompile("o+").Replacer("0")
	require.NoError(t, err)
	assert.Equal(t, "f0 b0", fn("foo bo"))

	_, err = MustCompile("o").Replacer("${x}")
	assert.Error(t, err)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile("ab").WriteDOT(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph nfa {"))
	assert.Contains(t, out, `[label="a"]`)
	assert.Contains(t, out, "shape=doublecircle")
}

func TestWriteGraphRejectsFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, MustCompile("ab").WriteGraph(t.Context(), &buf, "gif"))
}

func TestGenerateGo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustCompile("[a-z]+").GenerateGo(&buf, "Word", "words"))
	assert.Contains(t, buf.String(), "package words")
	assert.Contains(t, buf.String(), "func WordMatchString(input string) bool")

	assert.Error(t, MustCompile("a").GenerateGo(&buf, "not valid", "words"))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(true)
	l.SetOutput(&buf)

	_, err := Compile("a+", WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "NFA Generation")
}
