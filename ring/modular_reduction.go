// Package ring implements the RNS polynomial ring Z[X]/(X^N+1) that the
// RLWE zero-ciphertext core is built over: fixed-degree polynomials
// represented by their residues modulo a chain of word-sized primes.
package ring

import (
	"math/big"
	"math/bits"
)

// BarrettConstant holds the precomputed 128-bit approximation of 2^128/q
// used by BRedAdd and MulMod to replace a hardware division with a
// multiply-and-subtract, following the classical Barrett reduction.
type BarrettConstant [2]uint64

// BRedParams computes the Barrett reduction constants for modulus q:
// floor(2^128/q), split into its high and low 64-bit words.
func BRedParams(q uint64) BarrettConstant {
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Quo(r, new(big.Int).SetUint64(q))
	return BarrettConstant{new(big.Int).Rsh(r, 64).Uint64(), r.Uint64()}
}

// BRedAdd reduces x (up to 64 bits) modulo q using the precomputed Barrett
// constant u.
func BRedAdd(x, q uint64, u BarrettConstant) uint64 {
	s0, _ := bits.Mul64(x, u[0])
	r := x - s0*q
	if r >= q {
		r -= q
	}
	return r
}

// MulMod computes x*y mod q via full 128-bit Barrett reduction.
func MulMod(x, y, q uint64, u BarrettConstant) uint64 {
	ahi, alo := bits.Mul64(x, y)

	lhi, _ := bits.Mul64(alo, u[1])

	mhi, mlo := bits.Mul64(alo, u[0])
	s0, carry := bits.Add64(mlo, lhi, 0)
	s1 := mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])
	_, carry = bits.Add64(mlo, s0, 0)
	lhi = mhi + carry

	s0 = ahi*u[0] + s1 + lhi

	r := alo - s0*q
	if r >= q {
		r -= q
	}
	return r
}

// AddMod computes (x+y) mod q for x, y already in [0, q).
func AddMod(x, y, q uint64) uint64 {
	r := x + y
	if r >= q {
		r -= q
	}
	return r
}

// SubMod computes (x-y) mod q for x, y already in [0, q).
func SubMod(x, y, q uint64) uint64 {
	if x >= y {
		return x - y
	}
	return x + q - y
}

// NegMod computes (-x) mod q for x already in [0, q).
func NegMod(x, q uint64) uint64 {
	if x == 0 {
		return 0
	}
	return q - x
}

// ModExp computes x^e mod p by repeated squaring. x and p must each fit in
// 63 bits so that the intermediate Barrett products do not overflow.
func ModExp(x, e, p uint64) uint64 {
	u := BRedParams(p)
	result := uint64(1)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = MulMod(result, x, p, u)
		}
		x = MulMod(x, x, p, u)
	}
	return result
}
