package ring

// Poly is a polynomial in RNS form: L stripes of N coefficients, stripe j
// holding the residues of the polynomial modulo Moduli[j]. Coefficients are
// always kept in canonical form [0, q_j).
type Poly struct {
	Coeffs [][]uint64
}

// NewPoly allocates a zeroed polynomial with L stripes of N coefficients.
func (r *Ring) NewPoly() Poly {
	coeffs := make([][]uint64, len(r.Moduli))
	for i := range coeffs {
		coeffs[i] = make([]uint64, r.N)
	}
	return Poly{Coeffs: coeffs}
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	coeffs := make([][]uint64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		coeffs[i] = append([]uint64(nil), c...)
	}
	return Poly{Coeffs: coeffs}
}

// Copy overwrites dst in place with the contents of p.
func (p Poly) Copy(dst Poly) {
	for i := range p.Coeffs {
		copy(dst.Coeffs[i], p.Coeffs[i])
	}
}

// Level returns the index of the last populated RNS stripe.
func (p Poly) Level() int {
	return len(p.Coeffs) - 1
}

// SetZeroPoly zeroes every coefficient of p.
func SetZeroPoly(p Poly) {
	for _, stripe := range p.Coeffs {
		for i := range stripe {
			stripe[i] = 0
		}
	}
}

// Zeroize overwrites the backing coefficient arrays with zeros. Scratch
// polynomials allocated from a [Pool] are zeroized this way on release, so
// secret material never lingers in a reused buffer.
func (p Poly) Zeroize() {
	SetZeroPoly(p)
}
