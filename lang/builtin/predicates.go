package builtin

import "github.com/mna/jl/lang/value"

// unaryArg validates that args has exactly one argument, evaluates it, and
// returns the result still owned by the caller (release it). ok is false
// if the arity is wrong, in which case the appropriate error has already
// been reported and the caller should return its result directly.
func unaryArg(ctx *value.Context, args *value.Value) (v *value.Value, ok bool) {
	a := value.Next(args)
	if a == nil {
		tooFewArguments(ctx, args)
		return nil, false
	}
	if value.Next(a) != nil {
		tooManyArguments(ctx, args)
		return nil, false
	}
	return ctx.Eval(ctx, a), true
}

func boolResult(ctx *value.Context, truth bool) *value.Value {
	if truth {
		return ctx.DefineNumber("", 1)
	}
	return nil
}

func isNumberFunc(ctx *value.Context, args *value.Value) *value.Value {
	v, ok := unaryArg(ctx, args)
	if !ok {
		return nil
	}
	defer value.Release(ctx, v)
	return boolResult(ctx, value.IsNumber(v))
}

func isStringFunc(ctx *value.Context, args *value.Value) *value.Value {
	v, ok := unaryArg(ctx, args)
	if !ok {
		return nil
	}
	defer value.Release(ctx, v)
	return boolResult(ctx, value.IsString(v))
}

func isListFunc(ctx *value.Context, args *value.Value) *value.Value {
	v, ok := unaryArg(ctx, args)
	if !ok {
		return nil
	}
	defer value.Release(ctx, v)
	return boolResult(ctx, value.IsList(v))
}

// isNullFunc implements (null? v): true for both a literal absent result
// and an explicit Nil-tagged cell (e.g. the head of (list nil)) - the two
// are observationally identical per the language's truthiness and printing
// rules, so null? treats them identically too, via value.IsNil rather than
// a raw pointer comparison.
func isNullFunc(ctx *value.Context, args *value.Value) *value.Value {
	v, ok := unaryArg(ctx, args)
	if !ok {
		return nil
	}
	defer value.Release(ctx, v)
	return boolResult(ctx, value.IsNil(v))
}
