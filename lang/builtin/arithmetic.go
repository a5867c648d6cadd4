package builtin

import "github.com/mna/jl/lang/value"

// addFunc implements (+ a b...): sums every argument, each of which must be
// a Number. Zero arguments sums to 0.
func addFunc(ctx *value.Context, args *value.Value) *value.Value {
	sum := 0.0
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		n, ok := evalNumberArg(ctx, vp)
		if !ok {
			return invalidArgument(ctx, args)
		}
		sum += n
	}
	return ctx.DefineNumber("", sum)
}

// subFunc implements (- a b...): a minus every subsequent argument. At
// least one argument is required.
func subFunc(ctx *value.Context, args *value.Value) *value.Value {
	vp := value.Next(args)
	if vp == nil {
		return tooFewArguments(ctx, args)
	}
	total, ok := evalNumberArg(ctx, vp)
	if !ok {
		return invalidArgument(ctx, args)
	}
	for vp = value.Next(vp); vp != nil; vp = value.Next(vp) {
		n, ok := evalNumberArg(ctx, vp)
		if !ok {
			return invalidArgument(ctx, args)
		}
		total -= n
	}
	return ctx.DefineNumber("", total)
}

// mulFunc implements (* a b...). Zero arguments multiplies to 1.
func mulFunc(ctx *value.Context, args *value.Value) *value.Value {
	product := 1.0
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		n, ok := evalNumberArg(ctx, vp)
		if !ok {
			return invalidArgument(ctx, args)
		}
		product *= n
	}
	return ctx.DefineNumber("", product)
}

// divFunc implements (/ a b): exactly two Number arguments. Division by
// zero follows Go float semantics (±Inf or NaN), the same leniency the
// reference implementation has for its double division.
func divFunc(ctx *value.Context, args *value.Value) *value.Value {
	a := value.Next(args)
	if a == nil || value.Next(a) == nil {
		return tooFewArguments(ctx, args)
	}
	b := value.Next(a)
	if value.Next(b) != nil {
		return tooManyArguments(ctx, args)
	}
	na, ok := evalNumberArg(ctx, a)
	if !ok {
		return invalidArgument(ctx, args)
	}
	nb, ok := evalNumberArg(ctx, b)
	if !ok {
		return invalidArgument(ctx, args)
	}
	return ctx.DefineNumber("", na/nb)
}

// modFunc implements (mod a b): integer remainder of two Numbers, truncated
// toward zero like the reference implementation's (long) cast. (mod a 0)
// evaluates to nil rather than reporting an error, matching the reference
// implementation's silent "done" on a zero divisor.
func modFunc(ctx *value.Context, args *value.Value) *value.Value {
	a := value.Next(args)
	if a == nil || value.Next(a) == nil {
		return tooFewArguments(ctx, args)
	}
	b := value.Next(a)
	if value.Next(b) != nil {
		return tooManyArguments(ctx, args)
	}
	na, ok := evalNumberArg(ctx, a)
	if !ok {
		return invalidArgument(ctx, args)
	}
	nb, ok := evalNumberArg(ctx, b)
	if !ok {
		return invalidArgument(ctx, args)
	}
	divisor := int64(nb)
	if divisor == 0 {
		return nil
	}
	return ctx.DefineNumber("", float64(int64(na)%divisor))
}
