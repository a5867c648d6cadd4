// Package builtin implements every built-in special form: arithmetic and
// comparison, control forms (if/and/or/not/begin/define/lambda), list
// construction and traversal, string operations, and type predicates.
//
// It depends only on lang/value, never on lang/machine - a builtin that
// needs to evaluate a subform calls back through ctx.Eval, the field
// lang/machine wires at Context construction time. This keeps the two
// packages from importing each other.
package builtin

import (
	"github.com/dolthub/swiss"

	"github.com/mna/jl/lang/value"
)

// registry is a read-only, process-wide name-to-function table, built once
// at package init and never mutated afterward - every Context shares the
// same table, registering a fresh Special cell per name at construction.
var registry *swiss.Map[string, value.SpecialFunc]

func init() {
	entries := map[string]value.SpecialFunc{
		"=":  compareFunc,
		"!=": compareFunc,
		">":  compareFunc,
		">=": compareFunc,
		"<":  compareFunc,
		"<=": compareFunc,

		"+":   addFunc,
		"-":   subFunc,
		"*":   mulFunc,
		"/":   divFunc,
		"mod": modFunc,

		"and":    andFunc,
		"or":     orFunc,
		"not":    notFunc,
		"begin":  beginFunc,
		"if":     ifFunc,
		"define": defineFunc,
		"lambda": lambdaFunc,

		"list": listFunc,
		"cons": consFunc,
		"head": headFunc,
		"rest": restFunc,

		"char":   charFunc,
		"substr": substrFunc,
		"concat": concatFunc,

		"number?": isNumberFunc,
		"string?": isStringFunc,
		"list?":   isListFunc,
		"null?":   isNullFunc,
	}

	registry = swiss.NewMap[string, value.SpecialFunc](uint32(len(entries)))
	for name, fn := range entries {
		registry.Put(name, fn)
	}
}

// Register defines every built-in special form in ctx's current (normally
// root) scope.
func Register(ctx *value.Context) {
	registry.Iter(func(name string, fn value.SpecialFunc) bool {
		ctx.DefineSpecial(name, fn)
		return false
	})
}
