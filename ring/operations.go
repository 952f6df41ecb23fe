package ring

// This file gathers the representation-agnostic polynomial arithmetic: add,
// subtract, negate and the dyadic (pointwise) product. Add, Sub and Neg are
// valid in either representation (coefficient or NTT); DyadicProduct is
// only meaningful when both operands share NTT form.

// Add computes dst = a + b mod q, stripe by stripe.
func (r *Ring) Add(a, b, dst Poly) {
	for j, q := range r.Moduli {
		ca, cb, cd := a.Coeffs[j], b.Coeffs[j], dst.Coeffs[j]
		for i := 0; i < r.N; i++ {
			cd[i] = AddMod(ca[i], cb[i], q)
		}
	}
}

// Sub computes dst = a - b mod q, stripe by stripe.
func (r *Ring) Sub(a, b, dst Poly) {
	for j, q := range r.Moduli {
		ca, cb, cd := a.Coeffs[j], b.Coeffs[j], dst.Coeffs[j]
		for i := 0; i < r.N; i++ {
			cd[i] = SubMod(ca[i], cb[i], q)
		}
	}
}

// Neg computes dst = -a mod q, stripe by stripe.
func (r *Ring) Neg(a, dst Poly) {
	for j, q := range r.Moduli {
		ca, cd := a.Coeffs[j], dst.Coeffs[j]
		for i := 0; i < r.N; i++ {
			cd[i] = NegMod(ca[i], q)
		}
	}
}

// DyadicProduct computes dst = a ⊙ b mod q, the pointwise (dyadic) product
// of two polynomials in NTT form; it corresponds to polynomial
// multiplication mod X^N+1 once both operands are transformed.
func (r *Ring) DyadicProduct(a, b, dst Poly) {
	for j, q := range r.Moduli {
		u := r.bred[j]
		ca, cb, cd := a.Coeffs[j], b.Coeffs[j], dst.Coeffs[j]
		for i := 0; i < r.N; i++ {
			cd[i] = MulMod(ca[i], cb[i], q, u)
		}
	}
}

// BarrettReduce64 reduces a single 64-bit value x modulo the j-th RNS
// modulus, used by the uniform sampler to fold raw RNG words into
// canonical range.
func (r *Ring) BarrettReduce64(j int, x uint64) uint64 {
	return BRedAdd(x, r.Moduli[j], r.bred[j])
}
