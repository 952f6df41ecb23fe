package ring

import (
	"fmt"
	"math"

	"github.com/latticework/rlwezero/utils/sampling"
)

// GaussianSampler draws each coefficient from a Gaussian of standard
// deviation params.Sigma, truncated (by rejection) to [-Bound, Bound].
type GaussianSampler struct {
	ring   *Ring
	params NoiseParameters
}

// NewGaussianSampler returns a clipped-Gaussian sampler over ring.
func NewGaussianSampler(ring *Ring, params NoiseParameters) *GaussianSampler {
	return &GaussianSampler{ring: ring, params: params}
}

// Read fills dst with a fresh clipped-Gaussian polynomial in coefficient
// form. If the configured bound is (numerically) zero, dst is filled with
// zeros instead.
func (s *GaussianSampler) Read(rng *sampling.Uint32Source, dst Poly) error {
	if got, want := len(dst.Coeffs), len(s.ring.Moduli); got != want {
		return fmt.Errorf("ring: gaussian sampler: destination has %d RNS stripes, ring has %d", got, want)
	}

	if s.params.Bound < 1e-9 {
		SetZeroPoly(dst)
		return nil
	}

	for i := 0; i < s.ring.N; i++ {
		v, err := s.drawClipped(rng)
		if err != nil {
			return fmt.Errorf("ring: gaussian sampler: %w", err)
		}
		for j, q := range s.ring.Moduli {
			dst.Coeffs[j][i] = liftSigned(v, q)
		}
	}
	return nil
}

// drawClipped rejects-and-resamples a Box-Muller Gaussian draw until it
// falls within [-Bound, Bound], then truncates it toward zero.
func (s *GaussianSampler) drawClipped(rng *sampling.Uint32Source) (int64, error) {
	for {
		u1, err := uniformFloat01(rng)
		if err != nil {
			return 0, err
		}
		u2, err := uniformFloat01(rng)
		if err != nil {
			return 0, err
		}
		if u1 <= 0 {
			continue // avoid log(0)
		}

		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		noise := z * s.params.Sigma

		if noise >= -s.params.Bound && noise <= s.params.Bound {
			return int64(noise), nil // truncation toward zero
		}
	}
}

// uniformFloat01 draws a uniform value in [0, 1) from a 32-bit RNG word.
func uniformFloat01(rng *sampling.Uint32Source) (float64, error) {
	u, err := rng.Uint32()
	if err != nil {
		return 0, err
	}
	return float64(u) / (float64(uint64(1) << 32)), nil
}
