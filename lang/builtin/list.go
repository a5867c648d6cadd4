package builtin

import "github.com/mna/jl/lang/value"

// listFunc implements (list a b...): evaluates every argument and builds a
// fresh list of independent copies. Zero arguments is the empty list (nil).
func listFunc(ctx *value.Context, args *value.Value) *value.Value {
	vp := value.Next(args)
	if vp == nil {
		return nil
	}
	var head, tail *value.Value
	for ; vp != nil; vp = value.Next(vp) {
		arg := ctx.Eval(ctx, vp)
		item := value.CopyValue(ctx, arg)
		value.Release(ctx, arg)
		if tail == nil {
			head = item
		} else {
			value.SetNext(tail, item)
		}
		tail = item
	}
	return value.NewListOwning(ctx, head)
}

// consFunc implements (cons elem list): a fresh list whose first element is
// an independent copy of elem, chained to list's existing elements (shared,
// not copied). list may be nil, in which case the result is a one-element
// list.
func consFunc(ctx *value.Context, args *value.Value) *value.Value {
	a := value.Next(args)
	if a == nil || value.Next(a) == nil {
		return tooFewArguments(ctx, args)
	}
	b := value.Next(a)
	if value.Next(b) != nil {
		return tooManyArguments(ctx, args)
	}

	rest := ctx.Eval(ctx, b)
	if rest != nil && !value.IsList(rest) {
		value.Release(ctx, rest)
		return invalidArgument(ctx, args)
	}

	elem := ctx.Eval(ctx, a)
	head := value.CopyValue(ctx, elem)
	value.Release(ctx, elem)

	if rest != nil {
		value.SetNext(head, value.Head(rest))
		value.Retain(value.Head(rest))
		value.Release(ctx, rest)
	}
	return value.NewListOwning(ctx, head)
}

// headFunc implements (head list): the first element, retained. An empty
// list yields nil.
func headFunc(ctx *value.Context, args *value.Value) *value.Value {
	vp := ctx.Eval(ctx, value.Next(args))
	defer value.Release(ctx, vp)
	if !value.IsList(vp) {
		return invalidArgument(ctx, args)
	}
	result := value.Head(vp)
	value.Retain(result)
	return result
}

// restFunc implements (rest list): a fresh list sharing every element but
// the first. A list of zero or one elements yields nil.
func restFunc(ctx *value.Context, args *value.Value) *value.Value {
	vp := ctx.Eval(ctx, value.Next(args))
	defer value.Release(ctx, vp)
	if !value.IsList(vp) {
		return invalidArgument(ctx, args)
	}
	h := value.Head(vp)
	if value.Next(h) == nil {
		return nil
	}
	rest := value.Next(h)
	value.Retain(rest)
	return value.NewListOwning(ctx, rest)
}
