package builtin

import "github.com/mna/jl/lang/value"

// andFunc implements (and a b...): true (a Number 1) iff every argument is
// truthy, short-circuiting on the first falsy one. Zero arguments is true.
func andFunc(ctx *value.Context, args *value.Value) *value.Value {
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		if !checkCondition(ctx, vp) {
			return nil
		}
	}
	return ctx.DefineNumber("", 1)
}

// orFunc implements (or a b...): true on the first truthy argument,
// short-circuiting. Zero arguments is false.
func orFunc(ctx *value.Context, args *value.Value) *value.Value {
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		if checkCondition(ctx, vp) {
			return ctx.DefineNumber("", 1)
		}
	}
	return nil
}

// notFunc implements (not a): true iff a is falsy. Exactly one argument.
func notFunc(ctx *value.Context, args *value.Value) *value.Value {
	a := value.Next(args)
	if a == nil {
		return tooFewArguments(ctx, args)
	}
	if value.Next(a) != nil {
		return tooManyArguments(ctx, args)
	}
	if checkCondition(ctx, a) {
		return nil
	}
	return ctx.DefineNumber("", 1)
}

// beginFunc implements (begin a b...): evaluates each form in a fresh child
// scope, in order, releasing every intermediate result, and returns the
// last one.
func beginFunc(ctx *value.Context, args *value.Value) *value.Value {
	ctx.EnterScope()
	var result *value.Value
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		value.Release(ctx, result)
		result = ctx.Eval(ctx, vp)
	}
	ctx.LeaveScope()
	return result
}

// ifFunc implements (if cond then) and (if cond then else); a form beyond
// the else branch is ignored, same as the reference implementation. A
// missing else branch with a falsy condition evaluates to nil.
func ifFunc(ctx *value.Context, args *value.Value) *value.Value {
	cond := value.Next(args)
	if cond == nil {
		return tooFewArguments(ctx, args)
	}
	then := value.Next(cond)
	if checkCondition(ctx, cond) {
		return ctx.Eval(ctx, then)
	}
	return ctx.Eval(ctx, value.Next(then))
}

// defineFunc implements (define name expr): evaluates expr and binds it to
// name in the current scope, returning the same value. Forms beyond expr
// are ignored, same as the reference implementation.
func defineFunc(ctx *value.Context, args *value.Value) *value.Value {
	name := value.Next(args)
	if name == nil {
		return tooFewArguments(ctx, args)
	}
	if !value.IsVariable(name) {
		return invalidArgument(ctx, args)
	}
	result := ctx.Eval(ctx, value.Next(name))
	ctx.Define(value.VariableName(name), result)
	return result
}

// lambdaFunc implements (lambda (params...) body...): captures the
// defining scope and the unevaluated parameter list and body, without
// evaluating anything yet.
func lambdaFunc(ctx *value.Context, args *value.Value) *value.Value {
	params := value.Next(args)
	if params == nil || value.Next(params) == nil {
		return tooFewArguments(ctx, args)
	}
	if !value.IsList(params) {
		return invalidArgument(ctx, args)
	}
	return value.NewLambda(ctx, ctx.CurrentScope(), params)
}
