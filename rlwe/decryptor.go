package rlwe

import (
	"github.com/latticework/rlwezero/ring"
)

// Decryptor recovers the noise polynomial m = sum_t c_t * sk^t of a
// ciphertext, via Horner's method over the degree-k components. For a
// zero-ciphertext this value is exactly the accumulated noise, which
// should have a small infinity norm.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor binds a Decryptor to sk.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// DecryptZero evaluates ct under the bound secret key and returns the
// result in coefficient form, regardless of ct.IsNTT.
func (d *Decryptor) DecryptZero(ct *Ciphertext) ring.Poly {
	r := d.params.RingQ()
	k := ct.Degree()

	// The Horner recurrence below requires every component in NTT form,
	// since sk is always NTT form and DyadicProduct is only meaningful
	// there; coefficient-form ciphertexts are lifted component-by-component
	// as they're folded in, and the final accumulator is inverted back
	// only once at the very end.
	componentNTT := func(t int) ring.Poly {
		c := ct.Value[t].CopyNew()
		if !ct.IsNTT {
			r.NTT(c)
		}
		return c
	}

	acc := componentNTT(k - 1)

	for t := k - 1; t > 0; t-- {
		r.DyadicProduct(acc, d.sk.Value, acc)
		r.Add(acc, componentNTT(t-1), acc)
	}

	r.INTT(acc)

	return acc
}

// CenteredCoefficients re-centers every coefficient of p's stripe j into the
// signed range (-q_j/2, q_j/2], the representation infinity-norm checks
// operate on.
func CenteredCoefficients(r *ring.Ring, j int, p ring.Poly) []int64 {
	q := r.Moduli[j]
	half := q / 2
	out := make([]int64, len(p.Coeffs[j]))
	for i, c := range p.Coeffs[j] {
		if c > half {
			out[i] = int64(c) - int64(q)
		} else {
			out[i] = int64(c)
		}
	}
	return out
}
