package value_test

import (
	"testing"

	"github.com/mna/jl/lang/value"
	"github.com/stretchr/testify/require"
)

func TestDefineOverwriteReleasesPriorValue(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	ctx.Define("x", value.NewNumber(ctx, 1))
	require.Equal(t, float64(1), value.Number(ctx.Lookup("x")))

	ctx.Define("x", value.NewNumber(ctx, 2))
	require.Equal(t, float64(2), value.Number(ctx.Lookup("x")))
}

func TestLookupWalksParentChain(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	ctx.Define("outer", value.NewNumber(ctx, 1))
	ctx.EnterScope()
	require.NotNil(t, ctx.Lookup("outer"))
	require.Nil(t, ctx.Lookup("inner"))
	ctx.Define("inner", value.NewNumber(ctx, 2))
	require.NotNil(t, ctx.Lookup("inner"))
	ctx.LeaveScope()
	require.Nil(t, ctx.Lookup("inner"))
}

func TestClosureCapturesDefiningScopeNotCallSite(t *testing.T) {
	ctx := value.NewContext()
	defer ctx.Close()

	ctx.Define("x", value.NewNumber(ctx, 1))
	captured := ctx.CurrentScope()

	ctx.EnterScope()
	ctx.Define("x", value.NewNumber(ctx, 999))
	ctx.LeaveScope()

	require.Equal(t, float64(1), value.Number(value.LookupInScope(captured, "x")))
}

func TestRecursiveDefineCycleReclaimedOnScopeExit(t *testing.T) {
	ctx := value.NewContext()

	ctx.EnterScope()
	scope := ctx.CurrentScope()
	paramName := value.NewVariable(ctx, "n")
	body := value.NewNumber(ctx, 0)
	value.SetNext(paramName, nil)
	params := value.NewList(ctx, paramName)
	value.Release(ctx, paramName)
	value.SetNext(params, body)

	lambda := value.NewLambda(ctx, scope, params)
	value.Release(ctx, params) // paramsAndBody chain is now owned solely by the lambda's capture

	ctx.Define("f", lambda)
	value.Release(ctx, lambda)

	ctx.LeaveScope()

	ctx.Close()
	require.Zero(t, ctx.Outstanding())
}
