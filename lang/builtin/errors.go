package builtin

import "github.com/mna/jl/lang/value"

// opName extracts the operator name used in diagnostics: args is always the
// call form's unevaluated operator cell, almost always a Variable (a
// builtin is looked up and applied by name), but falls back to printing
// whatever it is rather than panicking if a host ever binds a Special under
// something else.
func opName(args *value.Value) string {
	if value.IsVariable(args) {
		return value.VariableName(args)
	}
	return value.Sprint(args)
}

func invalidArgument(ctx *value.Context, args *value.Value) *value.Value {
	ctx.Errorf("invalid argument to %s", opName(args))
	return nil
}

func tooFewArguments(ctx *value.Context, args *value.Value) *value.Value {
	ctx.Errorf("too few arguments to %s", opName(args))
	return nil
}

func tooManyArguments(ctx *value.Context, args *value.Value) *value.Value {
	ctx.Errorf("too many arguments to %s", opName(args))
	return nil
}

// checkCondition evaluates form and reports its truthiness, releasing the
// intermediate result. Used by and/or/not/if, which care only about truth,
// never the value itself.
func checkCondition(ctx *value.Context, form *value.Value) bool {
	v := ctx.Eval(ctx, form)
	truthy := value.Truthy(v)
	value.Release(ctx, v)
	return truthy
}

// evalNumberArg evaluates form and, if it is a Number, returns its payload
// and releases the intermediate cell. ok is false for anything else
// (including a nil result), in which case the caller should report
// invalidArgument.
func evalNumberArg(ctx *value.Context, form *value.Value) (n float64, ok bool) {
	v := ctx.Eval(ctx, form)
	if !value.IsNumber(v) {
		value.Release(ctx, v)
		return 0, false
	}
	n = value.Number(v)
	value.Release(ctx, v)
	return n, true
}

// evalStringArg evaluates form and, if it is a String, returns its payload
// and releases the intermediate cell.
func evalStringArg(ctx *value.Context, form *value.Value) (s string, ok bool) {
	v := ctx.Eval(ctx, form)
	if !value.IsString(v) {
		value.Release(ctx, v)
		return "", false
	}
	s = value.String(v)
	value.Release(ctx, v)
	return s, true
}
