package ring

import (
	"fmt"

	"github.com/latticework/rlwezero/utils/sampling"
)

// UniformSampler draws each coefficient uniformly over [0, q_j) for every
// RNS stripe, via rejection sampling on 64-bit words.
type UniformSampler struct {
	ring       *Ring
	thresholds []uint64
}

// NewUniformSampler returns a uniform sampler over ring, precomputing the
// per-modulus rejection threshold.
//
// The rejection threshold follows the simplest bias-free convention:
// threshold_j = 2^64 - (2^64 mod q_j); a draw r is accepted iff
// r < threshold_j, and stored as r mod q_j.
func NewUniformSampler(ring *Ring) *UniformSampler {
	thresholds := make([]uint64, len(ring.Moduli))
	for j, q := range ring.Moduli {
		const maxU64 = ^uint64(0)
		twoPow64ModQ := (maxU64%q + 1) % q
		thresholds[j] = -twoPow64ModQ // wraps to 2^64 - twoPow64ModQ
	}
	return &UniformSampler{ring: ring, thresholds: thresholds}
}

// Read fills dst with a fresh uniform polynomial in coefficient form.
func (s *UniformSampler) Read(rng *sampling.Uint32Source, dst Poly) error {
	if got, want := len(dst.Coeffs), len(s.ring.Moduli); got != want {
		return fmt.Errorf("ring: uniform sampler: destination has %d RNS stripes, ring has %d", got, want)
	}

	for j := range s.ring.Moduli {
		threshold := s.thresholds[j]
		stripe := dst.Coeffs[j]
		for i := 0; i < s.ring.N; i++ {
			for {
				r, err := rng.Uint64()
				if err != nil {
					return fmt.Errorf("ring: uniform sampler: %w", err)
				}
				if r < threshold {
					stripe[i] = s.ring.BarrettReduce64(j, r)
					break
				}
			}
		}
	}
	return nil
}
