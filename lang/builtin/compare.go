package builtin

import (
	"strings"

	"github.com/mna/jl/lang/value"
)

// compareFunc backs =, !=, <, <=, > and >=, dispatching on the operator
// name captured in args itself (all six share one implementation, same as
// the reference implementation's single CompareFunc). When either value is
// nil or they hold different tags, = and != compare by identity and the
// ordering operators report an invalid argument. Otherwise Number and
// String compare by value, and two values of any other same tag (two
// lists, say) are an invalid argument to all six operators.
func compareFunc(ctx *value.Context, args *value.Value) *value.Value {
	op := opName(args)

	a := value.Next(args)
	if a == nil || value.Next(a) == nil {
		return tooFewArguments(ctx, args)
	}
	b := value.Next(a)
	if value.Next(b) != nil {
		return tooManyArguments(ctx, args)
	}

	va := ctx.Eval(ctx, a)
	vb := ctx.Eval(ctx, b)
	defer value.Release(ctx, va)
	defer value.Release(ctx, vb)

	var cond bool
	switch {
	case va == nil || vb == nil || va.Tag() != vb.Tag():
		switch {
		case op == "=":
			cond = va == vb
		case op == "!=":
			cond = va != vb
		default:
			return invalidArgument(ctx, args)
		}
	default:
		var diff float64
		switch {
		case value.IsNumber(va):
			diff = value.Number(va) - value.Number(vb)
		case value.IsString(va):
			diff = float64(strings.Compare(value.String(va), value.String(vb)))
		default:
			return invalidArgument(ctx, args)
		}
		switch op {
		case "=":
			cond = diff == 0
		case "!=":
			cond = diff != 0
		case "<":
			cond = diff < 0
		case "<=":
			cond = diff <= 0
		case ">":
			cond = diff > 0
		case ">=":
			cond = diff >= 0
		}
	}

	if cond {
		return ctx.DefineNumber("", 1)
	}
	return nil
}
