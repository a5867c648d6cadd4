package value

// Scope is a lexical environment: an ordered binding tree, a retain count,
// and a link to its parent. The scope chain is a tree rooted at the global
// scope; each non-root scope has exactly one parent.
//
// The retain count covers two kinds of owner at once: frames currently on
// the evaluator's scope stack that point here, and Lambdas whose closure
// this scope is. That overlap is exactly what the cycle rule in
// releaseScope exists to break.
type Scope struct {
	bindings *binding
	parent   *Scope
	count    uint32
}

// binding is one name/value pair in a scope's tree, ordered by name so that
// Lookup and Define are O(log n) in the typical (balanced) case - the same
// shape as the reference implementation's BindingNode, not a hash map,
// because the language's own scope discipline (few bindings per frame,
// frequently walked during recursive evaluation) favors a tree that degrades
// gracefully rather than one with hashing overhead on every short-lived
// frame.
type binding struct {
	name        string
	value       *Value
	left, right *binding
}

func newScope(ctx *Context, parent *Scope) *Scope {
	s := ctx.scopes.get()
	*s = Scope{parent: parent, count: 1}
	return s
}

func retainScope(s *Scope) {
	if s != nil {
		s.count++
	}
}

// releaseScope implements the one cycle-breaking rule the language has: a
// scope's effective count on release excludes bindings that are themselves
// the only thing keeping a Lambda alive whose captured scope is this one.
// When the adjusted count reaches zero the scope and those lambdas go away
// together; otherwise only the ordinary decrement happens and the cycle
// persists (by design - general cycles are never reclaimed).
func releaseScope(ctx *Context, s *Scope) {
	adjusted := s.count - 1 - countCycleBindings(s.bindings, s)
	if adjusted == 0 {
		releaseBindings(ctx, s.bindings)
		ctx.scopes.put(s)
		return
	}
	s.count--
}

func countCycleBindings(b *binding, s *Scope) uint32 {
	if b == nil {
		return 0
	}
	count := countCycleBindings(b.left, s) + countCycleBindings(b.right, s)
	if b.value != nil && b.value.tag == Lambda && b.value.count == 1 && LambdaScope(b.value) == s {
		count++
	}
	return count
}

func releaseBindings(ctx *Context, b *binding) {
	if b == nil {
		return
	}
	releaseBindings(ctx, b.left)
	releaseBindings(ctx, b.right)
	Release(ctx, b.value)
	ctx.bindings.put(b)
}

// define inserts or overwrites the binding for name in s, retaining val and
// releasing whatever value name was previously bound to.
func define(ctx *Context, s *Scope, name string, val *Value) {
	Retain(val)
	bp := &s.bindings
	for *bp != nil {
		b := *bp
		switch {
		case name < b.name:
			bp = &b.left
		case name > b.name:
			bp = &b.right
		default:
			Release(ctx, b.value)
			b.value = val
			return
		}
	}
	b := ctx.bindings.get()
	*b = binding{name: name, value: val}
	*bp = b
}

// LookupInScope walks s and its ancestors for name, returning a borrowed
// handle or nil if unbound. Unlike (*Context).Lookup it does not depend on
// which scope a Context currently has active - useful for inspecting a
// captured closure scope directly.
func LookupInScope(s *Scope, name string) *Value {
	return lookup(s, name)
}

// lookup walks s and its ancestors for name, returning a borrowed (not
// retained) handle, or nil if unbound anywhere in the chain.
func lookup(s *Scope, name string) *Value {
	for ; s != nil; s = s.parent {
		b := s.bindings
		for b != nil {
			switch {
			case name < b.name:
				b = b.left
			case name > b.name:
				b = b.right
			default:
				return b.value
			}
		}
	}
	return nil
}
