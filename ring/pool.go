package ring

import "sync"

// Pool is a scoped pool of scratch polynomials. Every buffer handed back
// through Put is zeroized before it becomes eligible for reuse, so secret
// material never survives past the call that produced it.
type Pool struct {
	ring *Ring
	raw  sync.Pool
}

// NewPool returns a pool that hands out scratch polynomials sized for ring.
func NewPool(ring *Ring) *Pool {
	p := &Pool{ring: ring}
	p.raw.New = func() interface{} {
		poly := ring.NewPoly()
		return &poly
	}
	return p
}

// Get returns a scratch polynomial, zeroed, borrowed from the pool.
func (p *Pool) Get() *Poly {
	poly := p.raw.Get().(*Poly)
	SetZeroPoly(*poly)
	return poly
}

// Put zeroizes poly and returns its backing arrays to the pool. poly must
// not be used again after this call.
func (p *Pool) Put(poly *Poly) {
	SetZeroPoly(*poly)
	p.raw.Put(poly)
}
