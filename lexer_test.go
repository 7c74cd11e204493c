package hdrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	r := NewSourceReader(&SourceFile{Path: "t.h"}, src)
	var toks []Token
	for {
		tok, ok := r.NextToken(func(Issue) {})
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestNextTokenIdentifiersAndOperators(t *testing.T) {
	toks := tokenize(t, "typedef struct Foo { int x; } Foo;")
	require.NotEmpty(t, toks)
	assert.Equal(t, "typedef", toks[0].Text)
	assert.Equal(t, TokenIdent, toks[0].Kind)

	var sawOpenBrace, sawSemi bool
	for _, tok := range toks {
		if tok.Is("{") {
			sawOpenBrace = true
		}
		if tok.Is(";") {
			sawSemi = true
		}
	}
	assert.True(t, sawOpenBrace)
	assert.True(t, sawSemi)
}

func TestNextTokenLongestOperatorMatchFirst(t *testing.T) {
	toks := tokenize(t, "a <<= b")
	require.Len(t, toks, 3)
	assert.Equal(t, "<<=", toks[1].Text)
}

func TestNextTokenSkipsComments(t *testing.T) {
	toks := tokenize(t, "a /* block\ncomment */ b // line comment\nc")
	require.Len(t, toks, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{toks[0].Text, toks[1].Text, toks[2].Text})
}

func TestNextTokenNumericLiterals(t *testing.T) {
	cases := []string{"0x1F", "0b101", "3.14", "1e10", "1.5e-3f", "42UL"}
	for _, src := range cases {
		toks := tokenize(t, src)
		require.Lenf(t, toks, 1, "input %q", src)
		assert.Equal(t, TokenNumber, toks[0].Kind)
		assert.Equal(t, src, toks[0].Text)
	}
}

func TestNextTokenStringLiteral(t *testing.T) {
	toks := tokenize(t, `"hello \"world\""`)
	require.Len(t, toks, 1)
	assert.Equal(t, TokenString, toks[0].Kind)
}

func TestNextTokenUnterminatedStringEmitsIssue(t *testing.T) {
	r := NewSourceReader(&SourceFile{Path: "t.h"}, `"unterminated`)
	var issues []Issue
	_, ok := r.NextToken(func(i Issue) { issues = append(issues, i) })
	assert.False(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueLexical, issues[0].Kind)
}

func TestNextTokenRawStringReportsUnsupported(t *testing.T) {
	r := NewSourceReader(&SourceFile{Path: "t.h"}, `R"(raw text)"`)
	var issues []Issue
	_, ok := r.NextToken(func(i Issue) { issues = append(issues, i) })
	assert.False(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueUnsupportedConstruct, issues[0].Kind)
}

func TestTokenLocationLineAndColumn(t *testing.T) {
	src := "line1\nline2\nline3"
	r := NewSourceReader(&SourceFile{Path: "t.h"}, src)
	loc := r.TokenLocation(6) // first byte of "line2"
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)
}

func TestResetRewindsToStart(t *testing.T) {
	r := NewSourceReader(&SourceFile{Path: "t.h"}, "a b")
	first, _ := r.NextToken(func(Issue) {})
	r.Reset()
	second, _ := r.NextToken(func(Issue) {})
	assert.Equal(t, first, second)
}

func FuzzNextToken(f *testing.F) {
	seeds := []string{
		"typedef struct Foo { int x; } Foo;",
		"#define FOO(a, b) ((a) + (b))",
		`"a string" 'c' 0x10 1.5e-3`,
		"<<= ... ->* <=>",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		r := NewSourceReader(&SourceFile{Path: "fuzz.h"}, src)
		for i := 0; i < 10000; i++ {
			_, ok := r.NextToken(func(Issue) {})
			if !ok {
				return
			}
		}
	})
}
