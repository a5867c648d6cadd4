package scanner_test

import (
	"testing"

	"github.com/mna/jl/lang/scanner"
	"github.com/mna/jl/lang/token"
	"github.com/stretchr/testify/require"
)

type tok struct {
	tok token.Token
	lit string
	ln  int
}

func scanAll(t *testing.T, src string) []tok {
	t.Helper()
	var s scanner.Scanner
	s.Init([]byte(src))
	var out []tok
	for {
		tt, lit, pos := s.Scan()
		out = append(out, tok{tt, lit, pos.Line()})
		if tt == token.EOF {
			return out
		}
	}
}

func TestScanPunctuation(t *testing.T) {
	got := scanAll(t, "(())")
	require.Equal(t, []tok{
		{token.LPAREN, "(", 1},
		{token.LPAREN, "(", 1},
		{token.RPAREN, ")", 1},
		{token.RPAREN, ")", 1},
		{token.EOF, "", 1},
	}, got)
}

func TestScanWords(t *testing.T) {
	got := scanAll(t, "(add 1 2.5 foo)")
	require.Equal(t, []tok{
		{token.LPAREN, "(", 1},
		{token.WORD, "add", 1},
		{token.WORD, "1", 1},
		{token.WORD, "2.5", 1},
		{token.WORD, "foo", 1},
		{token.RPAREN, ")", 1},
		{token.EOF, "", 1},
	}, got)
}

func TestSkipsCommentsAndWhitespace(t *testing.T) {
	src := "; a comment\n  (foo) ; trailing\n(bar)"
	got := scanAll(t, src)
	require.Equal(t, []tok{
		{token.LPAREN, "(", 2},
		{token.WORD, "foo", 2},
		{token.RPAREN, ")", 2},
		{token.LPAREN, "(", 3},
		{token.WORD, "bar", 3},
		{token.RPAREN, ")", 3},
		{token.EOF, "", 3},
	}, got)
}

func TestScanStringEscapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"simple", `"hello"`, "hello"},
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"hex", `"\x41\x42"`, "AB"},
		{"octal", `"\0101\0102"`, "AB"},
		{"literal escape", `"a\"b"`, `a"b`},
		{"unknown escape is literal", `"a\qb"`, "aqb"},
		{"unterminated", `"abc`, "abc"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s scanner.Scanner
			s.Init([]byte(c.src))
			tt, lit, _ := s.Scan()
			require.Equal(t, token.STRING, tt)
			require.Equal(t, c.want, lit)
		})
	}
}

func TestHexEscapeStopsAtTwoDigits(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte(`"\x414"`))
	tt, lit, _ := s.Scan()
	require.Equal(t, token.STRING, tt)
	require.Equal(t, "A4", lit)
}

func TestOctalEscapeStopsAtThreeDigits(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte(`"\01011"`))
	tt, lit, _ := s.Scan()
	require.Equal(t, token.STRING, tt)
	require.Equal(t, "A1", lit)
}

func TestLineCounterAdvancesOnNewlinesInsideStrings(t *testing.T) {
	var s scanner.Scanner
	s.Init([]byte("\"a\nb\" foo"))
	_, _, pos1 := s.Scan()
	require.Equal(t, 1, pos1.Line())
	_, _, pos2 := s.Scan()
	require.Equal(t, 2, pos2.Line())
}
