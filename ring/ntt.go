package ring

// This file implements the negacyclic forward/inverse NTT that the rest of
// the core treats as a black box, driven per-modulus off the bit-reversed
// twiddle tables precomputed in NewRing. The butterfly structure (iterative
// Cooley-Tukey forward, Gentleman-Sande inverse, over bit-reversed twiddle
// tables indexed [m+i]) follows the classical construction.

// NTT applies the forward negacyclic NTT to every RNS stripe of p, in place,
// taking it from coefficient form to NTT form.
func (r *Ring) NTT(p Poly) {
	for j, q := range r.Moduli {
		nttForward(p.Coeffs[j], q, r.psi[j], r.bred[j])
	}
}

// INTT applies the inverse negacyclic NTT to every RNS stripe of p, in
// place, taking it from NTT form back to coefficient form.
func (r *Ring) INTT(p Poly) {
	for j, q := range r.Moduli {
		nttInverse(p.Coeffs[j], q, r.psiInv[j], r.nInv[j], r.bred[j])
	}
}

// NTTStripe/INTTStripe apply the transform to a single RNS stripe, used
// where the core must NTT one component of a ciphertext independently of
// the others.
func (r *Ring) NTTStripe(j int, coeffs []uint64) {
	nttForward(coeffs, r.Moduli[j], r.psi[j], r.bred[j])
}

func (r *Ring) INTTStripe(j int, coeffs []uint64) {
	nttInverse(coeffs, r.Moduli[j], r.psiInv[j], r.nInv[j], r.bred[j])
}

func nttForward(a []uint64, q uint64, psi []uint64, u BarrettConstant) {
	n := len(a)
	t := n
	for m := 1; m < n; m <<= 1 {
		t >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			w := psi[m+i]
			for j := j1; j < j2; j++ {
				U := a[j]
				V := MulMod(a[j+t], w, q, u)
				a[j] = AddMod(U, V, q)
				a[j+t] = SubMod(U, V, q)
			}
		}
	}
}

func nttInverse(a []uint64, q uint64, psiInv []uint64, nInv uint64, u BarrettConstant) {
	n := len(a)
	t := 1
	for m := n; m > 1; m >>= 1 {
		h := m >> 1
		j1 := 0
		for i := 0; i < h; i++ {
			j2 := j1 + t
			w := psiInv[h+i]
			for j := j1; j < j2; j++ {
				U := a[j]
				V := a[j+t]
				a[j] = AddMod(U, V, q)
				a[j+t] = MulMod(SubMod(U, V, q), w, q, u)
			}
			j1 += 2 * t
		}
		t <<= 1
	}
	for j := range a {
		a[j] = MulMod(a[j], nInv, q, u)
	}
}
