package builtin

import (
	"strings"

	"github.com/mna/jl/lang/value"
)

// charFunc implements (char s i): the single character at byte offset i in
// s, as a one-character String. An out-of-range i evaluates to nil rather
// than an error - this form has no counterpart in the reference
// implementation, added because substr alone makes single-character access
// awkward.
func charFunc(ctx *value.Context, args *value.Value) *value.Value {
	s := value.Next(args)
	if s == nil || value.Next(s) == nil {
		return tooFewArguments(ctx, args)
	}
	idx := value.Next(s)
	if value.Next(idx) != nil {
		return tooManyArguments(ctx, args)
	}

	sv, ok := evalStringArg(ctx, s)
	if !ok {
		return invalidArgument(ctx, args)
	}
	nv, ok := evalNumberArg(ctx, idx)
	if !ok {
		return invalidArgument(ctx, args)
	}

	i := int(nv)
	if i < 0 || i >= len(sv) {
		return nil
	}
	return value.NewString(ctx, string(sv[i]))
}

// substrFunc implements (substr s), (substr s start) and (substr s start
// len): a substring of s starting at byte offset start (default 0) with
// length len (default to the end of the string). Following the reference
// implementation, an optional argument that evaluates to nil - as opposed
// to being syntactically absent - also falls back to its default; only a
// non-nil, wrong-typed value is an error. A negative start is treated as
// 0; a start at or past the end of s, or a length of zero, yields nil.
func substrFunc(ctx *value.Context, args *value.Value) *value.Value {
	sForm := value.Next(args)
	if sForm == nil {
		return tooFewArguments(ctx, args)
	}
	strVal := ctx.Eval(ctx, sForm)
	if !value.IsString(strVal) {
		value.Release(ctx, strVal)
		return invalidArgument(ctx, args)
	}
	str := value.String(strVal)
	value.Release(ctx, strVal)

	start := 0
	startForm := value.Next(sForm)
	if startForm != nil {
		sv := ctx.Eval(ctx, startForm)
		if sv != nil {
			if !value.IsNumber(sv) {
				value.Release(ctx, sv)
				return invalidArgument(ctx, args)
			}
			start = int(value.Number(sv))
			value.Release(ctx, sv)
		}

		lenForm := value.Next(startForm)
		if lenForm != nil {
			if value.Next(lenForm) != nil {
				return tooManyArguments(ctx, args)
			}
			lv := ctx.Eval(ctx, lenForm)
			if lv != nil {
				if !value.IsNumber(lv) {
					value.Release(ctx, lv)
					return invalidArgument(ctx, args)
				}
				length := int(value.Number(lv))
				value.Release(ctx, lv)
				return substrResult(ctx, str, start, length)
			}
		}
	}
	return substrResult(ctx, str, start, -1)
}

func substrResult(ctx *value.Context, str string, start, length int) *value.Value {
	if start < 0 {
		start = 0
	}
	if start >= len(str) || length == 0 {
		return nil
	}
	end := len(str)
	if length >= 0 && start+length < end {
		end = start + length
	}
	return value.NewString(ctx, str[start:end])
}

// concatFunc implements (concat a b...): the byte-concatenation of every
// String argument.
func concatFunc(ctx *value.Context, args *value.Value) *value.Value {
	var sb strings.Builder
	for vp := value.Next(args); vp != nil; vp = value.Next(vp) {
		s, ok := evalStringArg(ctx, vp)
		if !ok {
			return invalidArgument(ctx, args)
		}
		sb.WriteString(s)
	}
	return value.NewString(ctx, sb.String())
}
