package value

// pool is a typed freelist: it hands out *T either by popping a previously
// released one or by allocating a fresh one, and tracks cumulative get/put
// counts. Go's garbage collector is the real memory backend - this exists to
// reproduce the allocation-discipline contract the language makes (every
// cell obtained is eventually returned) as a directly observable pair of
// counters, the way the reference implementation's single freelist does
// with pointer arithmetic.
type pool[T any] struct {
	free []*T
	gets uint64
	puts uint64
}

func (p *pool[T]) get() *T {
	p.gets++
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return v
	}
	return new(T)
}

func (p *pool[T]) put(v *T) {
	p.puts++
	p.free = append(p.free, v)
}

// outstanding returns the number of cells obtained from this pool that have
// not yet been returned to it.
func (p *pool[T]) outstanding() uint64 { return p.gets - p.puts }
