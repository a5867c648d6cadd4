package parser_test

import (
	"testing"

	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, ctx *value.Context, src string) *value.Value {
	t.Helper()
	p := parser.New(ctx, []byte(src))
	return p.Parse()
}

func TestParseBareAtoms(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	n := parseOne(t, ctx, "42")
	require.True(t, value.IsNumber(n))
	assert.Equal(t, float64(42), value.Number(n))
	value.Release(ctx, n)

	s := parseOne(t, ctx, `"hello"`)
	require.True(t, value.IsString(s))
	assert.Equal(t, "hello", value.String(s))
	value.Release(ctx, s)

	v := parseOne(t, ctx, "foo")
	require.True(t, value.IsVariable(v))
	assert.Equal(t, "foo", value.VariableName(v))
	value.Release(ctx, v)
}

func TestParseNegativeAndFloatNumbers(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	for _, tt := range []struct {
		src  string
		want float64
	}{
		{"-1", -1},
		{"3.5", 3.5},
		{"-0.25", -0.25},
		{"1e3", 1000},
	} {
		v := parseOne(t, ctx, tt.src)
		require.True(t, value.IsNumber(v), "src %q", tt.src)
		assert.Equal(t, tt.want, value.Number(v), "src %q", tt.src)
		value.Release(ctx, v)
	}
}

func TestWordsThatArentCleanNumbersAreVariables(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	for _, src := range []string{"1e", "12abc", "+", "-", "x1"} {
		v := parseOne(t, ctx, src)
		require.True(t, value.IsVariable(v), "src %q", src)
		assert.Equal(t, src, value.VariableName(v))
		value.Release(ctx, v)
	}
}

func TestParseNestedList(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	v := parseOne(t, ctx, "(+ 1 (* 2 3))")
	require.True(t, value.IsList(v))
	assert.Equal(t, "(+ 1 (* 2 3))", value.Sprint(v))
	value.Release(ctx, v)
}

func TestParseEmptyList(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	v := parseOne(t, ctx, "()")
	require.True(t, value.IsList(v))
	assert.Nil(t, value.Head(v))
	value.Release(ctx, v)
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	p := parser.New(ctx, []byte("1 2 3"))
	var got []float64
	for p.More() {
		v := p.Parse()
		got = append(got, value.Number(v))
		value.Release(ctx, v)
	}
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestParseUnterminatedListReportsErrorAndReturnsNil(t *testing.T) {
	var gotLine int
	var gotMsg string
	ctx := value.NewContext(value.WithErrorSink(func(line int, format string, args ...any) {
		gotLine = line
		gotMsg = format
	}))
	defer ctx.Close()

	v := parseOne(t, ctx, "(+ 1 2")
	assert.Nil(t, v)
	assert.Equal(t, 1, gotLine)
	assert.Contains(t, gotMsg, "end-of-input")
}

func TestParseStrayCloseParenReportsError(t *testing.T) {
	var gotMsg string
	ctx := value.NewContext(value.WithErrorSink(func(line int, format string, args ...any) {
		gotMsg = format
	}))
	defer ctx.Close()

	v := parseOne(t, ctx, ")")
	assert.Nil(t, v)
	assert.Contains(t, gotMsg, "unexpected ')'")
}

func TestParseTracksLineAcrossMultilineForms(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	p := parser.New(ctx, []byte("(+ 1\n   2)"))
	v := p.Parse()
	require.NotNil(t, v)
	assert.Equal(t, 2, ctx.Line())
	value.Release(ctx, v)
}
