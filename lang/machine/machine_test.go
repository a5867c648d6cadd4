package machine_test

import (
	"testing"

	"github.com/mna/jl/lang/machine"
	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAll parses and evaluates every top-level form in src, releasing all
// but the last result, and returns the last result still owned by the
// caller (release it, or pass it straight to value.Sprint before closing
// ctx).
func evalAll(t *testing.T, ctx *value.Context, src string) *value.Value {
	t.Helper()
	p := parser.New(ctx, []byte(src))
	var last *value.Value
	for p.More() {
		form := p.Parse()
		require.NotNil(t, form, "parse error in %q", src)
		if last != nil {
			value.Release(ctx, last)
		}
		last = ctx.Eval(ctx, form)
		value.Release(ctx, form)
	}
	return last
}

func evalSprint(t *testing.T, ctx *value.Context, src string) string {
	t.Helper()
	v := evalAll(t, ctx, src)
	s := value.Sprint(v)
	value.Release(ctx, v)
	return s
}

func TestSelfEvaluatingAtoms(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "1", evalSprint(t, ctx, "1"))
	assert.Equal(t, `"hi"`, evalSprint(t, ctx, `"hi"`))
	assert.Equal(t, "nil", evalSprint(t, ctx, "nil"))
}

func TestArithmeticAndComparison(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "6", evalSprint(t, ctx, "(+ 1 2 3)"))
	assert.Equal(t, "1", evalSprint(t, ctx, "(< 1 2)"))
	assert.Equal(t, "nil", evalSprint(t, ctx, "(< 2 1)"))
}

func TestDefineAndLookup(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "3", evalSprint(t, ctx, "(define x 3) x"))
}

func TestIfBranches(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "1", evalSprint(t, ctx, "(if 1 1 2)"))
	assert.Equal(t, "2", evalSprint(t, ctx, "(if nil 1 2)"))
	assert.Equal(t, "nil", evalSprint(t, ctx, "(if nil 1)"))
}

func TestLambdaApplicationAndClosures(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "7", evalSprint(t, ctx, "(define add (lambda (a b) (+ a b))) (add 3 4)"))
	assert.Equal(t, "5", evalSprint(t, ctx, `
		(define make-adder (lambda (n) (lambda (x) (+ x n))))
		(define add5 (make-adder 5))
		(add5 0)`))
}

func TestRecursiveLambda(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	src := `
		(define count-down (lambda (n) (if (<= n 0) 0 (count-down (- n 1)))))
		(count-down 100000)`
	assert.Equal(t, "0", evalSprint(t, ctx, src))
}

func TestCallFormOfDataBoundVariableSelfEvaluates(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "5", evalSprint(t, ctx, "(define x 5) (x)"))
}

func TestListWithNonVariableHeadSelfEvaluates(t *testing.T) {
	ctx := machine.NewContext()
	defer ctx.Close()

	assert.Equal(t, "(1 2 3)", evalSprint(t, ctx, "(1 2 3)"))
}

func TestArityErrorsReported(t *testing.T) {
	var msg string
	ctx := machine.NewContext(value.WithErrorSink(func(line int, format string, args ...any) {
		msg = format
	}))
	defer ctx.Close()

	v := evalAll(t, ctx, "(define f (lambda (a b) a)) (f 1)")
	assert.True(t, value.IsNil(v))
	assert.Contains(t, msg, "too few arguments")
	value.Release(ctx, v)
}

func TestMaxEvalDepthExceeded(t *testing.T) {
	var msg string
	ctx := machine.NewContext(value.WithMaxLevels(64), value.WithErrorSink(func(line int, format string, args ...any) {
		msg = format
	}))
	defer ctx.Close()

	v := evalAll(t, ctx, "(define loop (lambda (n) (loop n))) (loop 1)")
	assert.True(t, value.IsNil(v))
	assert.Contains(t, msg, "maximum evaluation depth exceeded")
	value.Release(ctx, v)
}

func TestRefCountConservationAcrossProgram(t *testing.T) {
	ctx := machine.NewContext()

	src := `
		(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))
		(fact 10)
		(define lst (list 1 2 3 "four"))
		(cons 0 lst)`
	v := evalAll(t, ctx, src)
	value.Release(ctx, v)

	ctx.Close()
	assert.Zero(t, ctx.Outstanding())
}
