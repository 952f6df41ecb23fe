package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Ring describes the RNS ring Z[X]/(X^N+1) over the modulus chain
// Q = (q_0, ..., q_{L-1}). It precomputes, once per modulus, everything
// needed to move a polynomial between coefficient and NTT form: the
// Barrett constants and the bit-reversed tables of powers of a primitive
// 2N-th root of unity.
type Ring struct {
	N      int
	Moduli []uint64

	bred []BarrettConstant

	// psi[j] and psiInv[j] hold, in bit-reversed order, the successive
	// powers of the primitive 2N-th root of unity and its inverse modulo
	// Moduli[j]; nInv[j] holds N^{-1} mod Moduli[j].
	psi    [][]uint64
	psiInv [][]uint64
	nInv   []uint64
}

// NewRing validates the parameters and precomputes the NTT tables for every
// modulus in the chain. N must be a power of two and every modulus must be
// prime and congruent to 1 modulo 2N so that a primitive 2N-th root of
// unity exists.
func NewRing(N int, moduli []uint64) (*Ring, error) {
	if N < 2 || N&(N-1) != 0 {
		return nil, fmt.Errorf("ring: N=%d is not a power of two", N)
	}
	if len(moduli) == 0 {
		return nil, fmt.Errorf("ring: empty modulus chain")
	}

	r := &Ring{
		N:      N,
		Moduli: append([]uint64(nil), moduli...),
		bred:   make([]BarrettConstant, len(moduli)),
		psi:    make([][]uint64, len(moduli)),
		psiInv: make([][]uint64, len(moduli)),
		nInv:   make([]uint64, len(moduli)),
	}

	logN := bits.Len64(uint64(N)) - 1

	for i, q := range moduli {
		if q>>61 != 0 {
			return nil, fmt.Errorf("ring: modulus q_%d=%d exceeds the 61-bit bound", i, q)
		}
		if !isPrime(q) {
			return nil, fmt.Errorf("ring: modulus q_%d=%d is not prime", i, q)
		}
		if (q-1)%uint64(2*N) != 0 {
			return nil, fmt.Errorf("ring: modulus q_%d=%d admits no primitive %d-th root of unity", i, q, 2*N)
		}

		r.bred[i] = BRedParams(q)

		psi, psiInv, err := findPrimitive2NthRoot(q, N)
		if err != nil {
			return nil, fmt.Errorf("ring: modulus q_%d: %w", i, err)
		}

		r.psi[i] = bitReversedPowers(psi, q, N, logN, r.bred[i])
		r.psiInv[i] = bitReversedPowers(psiInv, q, N, logN, r.bred[i])
		r.nInv[i] = ModExp(uint64(N), q-2, q)
	}

	return r, nil
}

// bitReversedPowers returns a table T of length N such that
// T[bitReverse(j, logN)] = root^j mod q, for j in [0, N).
func bitReversedPowers(root, q uint64, N, logN int, u BarrettConstant) []uint64 {
	table := make([]uint64, N)
	table[0] = 1
	prevRev := 0
	for j := 1; j < N; j++ {
		rev := bitReverse(j, logN)
		table[rev] = MulMod(table[prevRev], root, q, u)
		prevRev = rev
	}
	return table
}

func bitReverse(x, bitLen int) int {
	r := 0
	for i := 0; i < bitLen; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// findPrimitive2NthRoot returns a primitive 2N-th root of unity modulo q and
// its modular inverse, by locating a generator of a cyclic subgroup of the
// required order. q must already be known to satisfy q ≡ 1 (mod 2N).
func findPrimitive2NthRoot(q uint64, N int) (psi, psiInv uint64, err error) {
	order := uint64(2 * N)
	exp := (q - 1) / order

	for g := uint64(2); g < q; g++ {
		cand := ModExp(g, exp, q)
		if cand == 0 || cand == 1 {
			continue
		}
		// cand has order dividing 2N; since 2N is a power of two, it is a
		// primitive 2N-th root iff cand^N == -1 mod q.
		if ModExp(cand, uint64(N), q) == q-1 {
			psi = cand
			psiInv = ModExp(cand, q-2, q)
			return psi, psiInv, nil
		}
	}
	return 0, 0, fmt.Errorf("no primitive 2N-th root of unity found")
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return new(big.Int).SetUint64(n).ProbablyPrime(30)
}

// AtLevel returns a view of the ring restricted to the first level+1 moduli,
// i.e. operating over Z_{q_0} x ... x Z_{q_level}.
func (r *Ring) AtLevel(level int) *Ring {
	return &Ring{
		N:      r.N,
		Moduli: r.Moduli[:level+1],
		bred:   r.bred[:level+1],
		psi:    r.psi[:level+1],
		psiInv: r.psiInv[:level+1],
		nInv:   r.nInv[:level+1],
	}
}

// Level returns the index of the last modulus in the chain.
func (r *Ring) Level() int {
	return len(r.Moduli) - 1
}
