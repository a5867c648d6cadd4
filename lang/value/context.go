package value

import (
	"fmt"
	"io"
	"os"
)

// DefaultMaxLevels is the recursion bound evaluation is guarded by unless
// overridden with WithMaxLevels.
const DefaultMaxLevels = 1 << 15

// Context is the top-level handle owning the scope stack, the three typed
// freelists, the recursion counter, and the diagnostics line number - the
// same responsibilities the reference implementation's JLContext carries in
// one struct, split here only by what each field's lifecycle is (pools vs.
// scope stack vs. diagnostics).
//
// Eval is wired by package machine at construction time so that package
// builtin can call back into evaluation (ctx.Eval(ctx, v)) without either
// package importing the other.
type Context struct {
	scope *Scope

	values   pool[Value]
	scopes   pool[Scope]
	bindings pool[binding]

	line      int
	levels    int
	maxLevels int

	Eval func(ctx *Context, v *Value) *Value

	// Errors is the diagnostic sink: every parse/shape/runtime error is
	// reported here, tagged with the current source line, before the
	// offending operation evaluates to nil. It is pluggable so tests (and
	// embedding hosts) can capture diagnostics without scraping Stderr.
	Errors func(line int, format string, args ...any)

	Stdout io.Writer
	Stderr io.Writer
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithMaxLevels overrides the recursion bound (default DefaultMaxLevels).
func WithMaxLevels(n int) Option {
	return func(ctx *Context) { ctx.maxLevels = n }
}

// WithStdout overrides the writer print output goes to (default os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(ctx *Context) { ctx.Stdout = w }
}

// WithStderr overrides the writer the default error sink writes to (default
// os.Stderr). Has no effect if WithErrorSink is also given.
func WithStderr(w io.Writer) Option {
	return func(ctx *Context) { ctx.Stderr = w }
}

// WithErrorSink overrides the diagnostic sink entirely.
func WithErrorSink(fn func(line int, format string, args ...any)) Option {
	return func(ctx *Context) { ctx.Errors = fn }
}

// NewContext creates a root scope and returns a ready-to-use Context. The
// caller (package machine) is expected to register built-ins and wire Eval
// before anything is parsed or evaluated.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		maxLevels: DefaultMaxLevels,
		line:      1,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.Errors == nil {
		ctx.Errors = func(line int, format string, args ...any) {
			fmt.Fprintf(ctx.Stderr, "ERROR[%d]: "+format+"\n", append([]any{line}, args...)...)
		}
	}
	ctx.scope = newScope(ctx, nil)
	return ctx
}

// Close releases the root scope and everything still transitively reachable
// from it. After Close, ctx must not be used again.
func (ctx *Context) Close() {
	releaseScope(ctx, ctx.scope)
	ctx.scope = nil
}

// CurrentScope returns the scope new bindings and lookups currently resolve
// against.
func (ctx *Context) CurrentScope() *Scope { return ctx.scope }

// EnterScope pushes a fresh child scope onto ctx's scope stack.
func (ctx *Context) EnterScope() {
	ctx.scope = newScope(ctx, ctx.scope)
}

// LeaveScope pops the current scope, releasing it.
func (ctx *Context) LeaveScope() {
	s := ctx.scope
	ctx.scope = s.parent
	releaseScope(ctx, s)
}

// SwitchScope replaces the current scope wholesale (used by the lambda
// application protocol to hop to a lambda's captured scope) and returns the
// previous one so the caller can restore it.
func (ctx *Context) SwitchScope(s *Scope) *Scope {
	prev := ctx.scope
	ctx.scope = s
	return prev
}

// Define binds name to val in the current scope, retaining val.
func (ctx *Context) Define(name string, val *Value) {
	define(ctx, ctx.scope, name, val)
}

// DefineNumber allocates a Number cell and, if name is non-empty, binds it
// in the current scope. The returned handle is always creator-owned (count
// includes the caller's reference regardless of whether it was also bound).
func (ctx *Context) DefineNumber(name string, n float64) *Value {
	v := NewNumber(ctx, n)
	if name != "" {
		ctx.Define(name, v)
	}
	return v
}

// DefineSpecial registers a host function under name in the current scope.
func (ctx *Context) DefineSpecial(name string, fn SpecialFunc) {
	v := NewSpecial(ctx, fn)
	ctx.Define(name, v)
	Release(ctx, v)
}

// Lookup walks the current scope chain for name, returning a borrowed
// handle or nil if unbound.
func (ctx *Context) Lookup(name string) *Value {
	return lookup(ctx.scope, name)
}

// Line returns the source line of the token the parser most recently
// scanned - its one-token lookahead, so once a form has been parsed this is
// the line of the token following it. Diagnostics are tagged with it.
func (ctx *Context) Line() int { return ctx.line }

// SetLine updates the diagnostics line counter; the parser calls this as it
// advances through source.
func (ctx *Context) SetLine(n int) { ctx.line = n }

// Errorf reports a diagnostic tagged with the current line through the
// configured sink.
func (ctx *Context) Errorf(format string, args ...any) {
	ctx.Errors(ctx.line, format, args...)
}

// EnterEval bumps the recursion counter and reports whether the depth bound
// was exceeded. Every recursive call into evaluation must pair this with a
// deferred ExitEval.
func (ctx *Context) EnterEval() (exceeded bool) {
	ctx.levels++
	return ctx.levels > ctx.maxLevels
}

// ExitEval unwinds one level of the recursion counter.
func (ctx *Context) ExitEval() { ctx.levels-- }

// PoolStats reports cumulative get/put counts for the three typed freelists,
// for tests asserting ref-count conservation.
type PoolStats struct {
	Values, Scopes, Bindings struct{ Gets, Puts uint64 }
}

func (ctx *Context) PoolStats() PoolStats {
	var s PoolStats
	s.Values.Gets, s.Values.Puts = ctx.values.gets, ctx.values.puts
	s.Scopes.Gets, s.Scopes.Puts = ctx.scopes.gets, ctx.scopes.puts
	s.Bindings.Gets, s.Bindings.Puts = ctx.bindings.gets, ctx.bindings.puts
	return s
}

// Outstanding reports the total number of cells, across all three pools,
// obtained but not yet returned. Zero means every allocation made during
// ctx's lifetime has been released.
func (ctx *Context) Outstanding() uint64 {
	return ctx.values.outstanding() + ctx.scopes.outstanding() + ctx.bindings.outstanding()
}
