package value

// Value is a tagged variant cell: exactly the fields relevant to its Tag are
// meaningful, the rest are zero. next threads cells into cons-lists; it is
// an intrusive link, not ownership by whatever holds the head (retaining a
// list head retains only the head cell, the chain is co-owned cell by
// cell - see Release).
type Value struct {
	tag   Tag
	count uint32
	next  *Value

	num  float64
	str  string  // String, Variable
	head *Value  // List: chain head. Lambda: the Scope-handle cell, whose own
	             // next points at the params-list cell, whose next points at
	             // the first body form, and so on.
	scope *Scope // Scope tag only.

	special SpecialFunc
	extra   any
}

// SpecialFunc is a host-provided callable bound to a Special value. It
// receives the unevaluated call list (args is the head cell, i.e. the
// operator position itself; the actual arguments are args.next) and is
// responsible for evaluating whatever it needs via ctx.Eval.
type SpecialFunc func(ctx *Context, args *Value) *Value

// Tag reports which variant v holds. A nil *Value reports Nil.
func (v *Value) Tag() Tag {
	if v == nil {
		return Nil
	}
	return v.tag
}

// IsNil reports whether v denotes the nil value, whether that is a literal
// Go nil pointer or a cell explicitly tagged Nil (the latter occurs only as
// a genuine list element, e.g. the result of (list nil)).
func IsNil(v *Value) bool {
	return v == nil || v.tag == Nil
}

// Retain increments v's reference count. A nil v is a no-op: absence has no
// count to bump.
func Retain(v *Value) {
	if v != nil {
		v.count++
	}
}

// Release decrements v's count and, for each cell that reaches zero, frees
// its payload and continues down the next chain - walking only as far as
// cells that themselves hit zero, since a surviving cell means the chain
// from there on is still referenced elsewhere.
func Release(ctx *Context, v *Value) {
	for v != nil {
		v.count--
		if v.count > 0 {
			return
		}
		next := v.next
		switch v.tag {
		case List, Lambda:
			Release(ctx, v.head)
		case Scope:
			releaseScope(ctx, v.scope)
		}
		ctx.values.put(v)
		v = next
	}
}

// CopyValue returns a fresh, independently-owned cell with the same logical
// value as other. A nil other still produces a real cell (tagged Nil): this
// is how (list nil) puts an actual nil element into a list distinguishable
// from the chain simply ending. The returned cell's next is always nil -
// copying a payload never copies sibling cells in the chain.
func CopyValue(ctx *Context, other *Value) *Value {
	result := ctx.values.get()
	*result = Value{tag: Nil, count: 1}
	if other == nil {
		return result
	}
	result.tag = other.tag
	result.num = other.num
	result.str = other.str
	result.special = other.special
	result.extra = other.extra
	switch other.tag {
	case List, Lambda, Scope:
		result.head = other.head
		Retain(result.head)
		result.scope = other.scope
	default:
	}
	return result
}

func newValue(ctx *Context, tag Tag) *Value {
	v := ctx.values.get()
	*v = Value{tag: tag, count: 1}
	return v
}

// NewNumber returns a freshly allocated Number cell.
func NewNumber(ctx *Context, n float64) *Value {
	v := newValue(ctx, Number)
	v.num = n
	return v
}

// NewString returns a freshly allocated String cell.
func NewString(ctx *Context, s string) *Value {
	v := newValue(ctx, String)
	v.str = s
	return v
}

// NewVariable returns a freshly allocated Variable cell.
func NewVariable(ctx *Context, name string) *Value {
	v := newValue(ctx, Variable)
	v.str = name
	return v
}

// NewList returns a freshly allocated List cell whose chain head is head
// (retained; pass nil for the empty list).
func NewList(ctx *Context, head *Value) *Value {
	v := newValue(ctx, List)
	v.head = head
	Retain(head)
	return v
}

// NewListOwning returns a List cell taking ownership of an already-built
// chain without retaining it - for assembling a brand new chain element by
// element (as the parser does), where nothing else owns the elements yet.
// Use NewList instead when head is an existing, independently-owned value
// being aliased into a new container.
func NewListOwning(ctx *Context, head *Value) *Value {
	v := newValue(ctx, List)
	v.head = head
	return v
}

// NewSpecial returns a freshly allocated Special cell wrapping fn.
func NewSpecial(ctx *Context, fn SpecialFunc) *Value {
	v := newValue(ctx, Special)
	v.special = fn
	return v
}

// CallSpecial invokes special's underlying Go function with args (the call
// form's operator cell, whose next chains to the actual arguments - see
// SpecialFunc). It panics if special is not a Special value.
func CallSpecial(ctx *Context, special *Value, args *Value) *Value {
	return special.special(ctx, args)
}

// Introspection, per the embedding API: IsNumber/Number, IsString/String,
// IsList/Head/Next. These never retain - callers that keep a returned handle
// around past the owning cell's lifetime must Retain explicitly.

func IsNumber(v *Value) bool { return v != nil && v.tag == Number }

// Number returns v's numeric payload. It panics if v is nil and returns 0
// for any other non-Number; use IsNumber first.
func Number(v *Value) float64 { return v.num }

func IsString(v *Value) bool { return v != nil && v.tag == String }

// String returns v's string payload. It panics if v is not a String; use
// IsString first.
func String(v *Value) string { return v.str }

func IsVariable(v *Value) bool { return v != nil && v.tag == Variable }

// VariableName returns v's identifier text. It panics if v is nil; for a
// String it returns the string payload and for other tags "".
func VariableName(v *Value) string { return v.str }

func IsList(v *Value) bool { return v != nil && v.tag == List }

func IsLambda(v *Value) bool { return v != nil && v.tag == Lambda }

func IsSpecial(v *Value) bool { return v != nil && v.tag == Special }

// Head returns the first element of the list v, or nil if v is empty or v
// itself is nil. It does not check the tag: for a Lambda it returns the
// Scope-handle cell and for atoms nil, so use IsList first.
func Head(v *Value) *Value {
	if v == nil {
		return nil
	}
	return v.head
}

// Next returns the cell following v in its chain, or nil at the end or if v
// itself is nil - nil-tolerant so argument-chain walks (vp.Next(vp)) don't
// need a guard at every step when a call form turns out to be short.
func Next(v *Value) *Value {
	if v == nil {
		return nil
	}
	return v.next
}

// SetNext links n after v in its chain. It is used while building chains
// cell by cell (the parser assembling a list, builtins assembling a result)
// and does not itself change any reference count - the caller already owns
// whatever count n needs.
func SetNext(v, n *Value) { v.next = n }

// Truthy implements the language's truthiness rule: nil is falsy, the
// Number 0 is falsy, an empty list is falsy, everything else is truthy.
func Truthy(v *Value) bool {
	switch {
	case IsNil(v):
		return false
	case v.tag == Number:
		return v.num != 0
	case v.tag == List:
		return v.head != nil
	default:
		return true
	}
}

// NewLambda returns a freshly allocated Lambda cell capturing scope, with
// paramsAndBody as its remaining payload: a List cell holding the parameter
// names, chained to the body forms. paramsAndBody is retained, not copied -
// it is the already-parsed form shared with the defining expression, exactly
// as CreateValue's single JLRetain call does in the reference
// implementation.
func NewLambda(ctx *Context, scope *Scope, paramsAndBody *Value) *Value {
	scopeCell := newValue(ctx, Scope)
	scopeCell.scope = scope
	retainScope(scope)
	scopeCell.next = paramsAndBody
	Retain(paramsAndBody)

	lambda := newValue(ctx, Lambda)
	lambda.head = scopeCell
	return lambda
}

// LambdaScope returns the scope a Lambda closed over. v must be a Lambda;
// the tag is not checked, and a value with no head cell panics.
func LambdaScope(v *Value) *Scope { return v.head.scope }

// LambdaParamsAndBody returns the List cell holding v's parameter names,
// chained to its body forms. v must be a Lambda; the tag is not checked,
// and a value with no head cell panics.
func LambdaParamsAndBody(v *Value) *Value { return v.head.next }
