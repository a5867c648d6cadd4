// Package machine implements the tree-walking evaluator: the recursive
// dispatch over *value.Value forms, and the lambda application protocol
// (scope switch, parameter binding, sequential body evaluation).
//
// It is deliberately the only package that imports both lang/value and
// lang/builtin: builtin depends solely on lang/value and calls back into
// evaluation through the Context.Eval field this package wires at
// construction time, so the two packages never import each other.
package machine

import (
	"github.com/mna/jl/lang/builtin"
	"github.com/mna/jl/lang/value"
)

// NewContext returns a ready-to-use Context with every built-in form
// registered and evaluation wired in.
func NewContext(opts ...value.Option) *value.Context {
	ctx := value.NewContext(opts...)
	ctx.Eval = Evaluate
	builtin.Register(ctx)
	return ctx
}

// Evaluate reduces v to its value in ctx's current scope. The returned
// handle is creator-owned: callers must Release it (or pass ownership on)
// exactly once. A nil v evaluates to nil.
func Evaluate(ctx *value.Context, v *value.Value) *value.Value {
	if value.IsNil(v) {
		return nil
	}

	if ctx.EnterEval() {
		ctx.ExitEval()
		ctx.Errorf("maximum evaluation depth exceeded")
		return nil
	}
	defer ctx.ExitEval()

	switch {
	case value.IsList(v):
		return evalList(ctx, v)
	case value.IsVariable(v):
		return evalVariable(ctx, v)
	default:
		// Numbers, strings, lambdas and specials are self-evaluating.
		value.Retain(v)
		return v
	}
}

func evalVariable(ctx *value.Context, v *value.Value) *value.Value {
	bound := ctx.Lookup(value.VariableName(v))
	if bound == nil {
		ctx.Errorf("unbound variable %q", value.VariableName(v))
		return nil
	}
	value.Retain(bound)
	return bound
}

// evalList dispatches a list form. Only a list headed by a Variable is
// ever a candidate call form: the variable is looked up and, depending on
// what it is bound to, either called as a Special, applied as a Lambda, or
// - if it is bound to anything else - self-evaluated as data. A list
// headed by anything other than a Variable (a literal number, string,
// nested list, and so on) is never a call and self-evaluates as-is, the
// same way a bare atom does.
func evalList(ctx *value.Context, v *value.Value) *value.Value {
	head := value.Head(v)
	if head == nil {
		// The empty list evaluates to itself, not to a call.
		value.Retain(v)
		return v
	}
	if !value.IsVariable(head) {
		value.Retain(v)
		return v
	}

	op := Evaluate(ctx, head)
	if op == nil {
		// Unbound variable; evalVariable already reported the diagnostic.
		return nil
	}

	switch {
	case value.IsSpecial(op):
		result := value.CallSpecial(ctx, op, head)
		value.Release(ctx, op)
		return result
	case value.IsLambda(op):
		result := applyLambda(ctx, op, value.Next(head))
		value.Release(ctx, op)
		return result
	default:
		// Bound to non-callable data: the call form self-evaluates to that
		// data, op is already a retained handle on it.
		return op
	}
}

// applyLambda runs fn's body in a fresh frame: a new scope parented on the
// lambda's captured scope, with each parameter bound to its argument -
// evaluated in the CALLER's current scope, not the callee's - before the
// scope switch happens. Extra or missing arguments are reported as errors,
// matching the reference implementation's TooManyArgumentsError and
// TooFewArgumentsError.
func applyLambda(ctx *value.Context, fn *value.Value, args *value.Value) *value.Value {
	paramsAndBody := value.LambdaParamsAndBody(fn)
	params := value.Head(paramsAndBody)

	type bound struct {
		name string
		val  *value.Value
	}
	var bindings []bound

	param, arg := params, args
	for param != nil {
		if arg == nil {
			for _, b := range bindings {
				value.Release(ctx, b.val)
			}
			ctx.Errorf("too few arguments")
			return nil
		}
		argVal := Evaluate(ctx, arg)
		bindings = append(bindings, bound{name: value.VariableName(param), val: argVal})
		param = value.Next(param)
		arg = value.Next(arg)
	}
	if arg != nil {
		for _, b := range bindings {
			value.Release(ctx, b.val)
		}
		ctx.Errorf("too many arguments")
		return nil
	}

	prevScope := ctx.SwitchScope(value.LambdaScope(fn))
	ctx.EnterScope()
	for _, b := range bindings {
		ctx.Define(b.name, b.val)
		value.Release(ctx, b.val)
	}

	var result *value.Value
	for body := value.Next(paramsAndBody); body != nil; body = value.Next(body) {
		if result != nil {
			value.Release(ctx, result)
		}
		result = Evaluate(ctx, body)
	}

	ctx.LeaveScope()
	ctx.SwitchScope(prevScope)
	return result
}
