// Package value implements the jl value representation: a tagged variant
// cell with a reference count and an intrusive next pointer, the scope tree
// values are looked up in, and the typed freelists both are allocated from.
//
// The evaluator itself (package machine) and the built-in forms (package
// builtin) both depend on this package but not on each other, so Context
// carries an Eval callback that machine wires at construction time - this
// lets builtin call back into evaluation without importing machine.
package value

// Tag identifies which variant of Value a cell holds.
type Tag uint8

const (
	// Nil is never actually set on a reachable *Value: absence is the Go nil
	// pointer everywhere except as a genuine list element (see CopyValue),
	// where a real cell with this tag is needed to distinguish "a nil in the
	// list" from "end of the list".
	Nil Tag = iota
	Number
	String
	Variable
	List
	Lambda
	Special
	Scope
)

var tagNames = [...]string{
	Nil:      "nil",
	Number:   "number",
	String:   "string",
	Variable: "variable",
	List:     "list",
	Lambda:   "lambda",
	Special:  "special",
	Scope:    "scope",
}

func (t Tag) String() string {
	if int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}
