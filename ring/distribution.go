package ring

import (
	"github.com/latticework/rlwezero/utils/sampling"
)

// Sampler is the common shape of the four distribution samplers: each
// fills an RNS polynomial in coefficient form from a distribution over the
// ring, drawing randomness from the supplied adapter.
type Sampler interface {
	Read(rng *sampling.Uint32Source, dst Poly) error
}

// NoiseDistribution selects which error distribution an encryptor draws
// its noise from.
type NoiseDistribution int

const (
	// NoiseGaussian selects the clipped-Gaussian error sampler.
	NoiseGaussian NoiseDistribution = iota
	// NoiseCBD selects the centered-binomial error sampler.
	NoiseCBD
)

// NoiseParameters bundles the error distribution's standard deviation and
// clipping bound as first-class, explicit configuration rather than hidden
// package globals, so tests can vary them per scenario.
type NoiseParameters struct {
	Distribution NoiseDistribution
	Sigma        float64 // noise_standard_deviation
	Bound        float64 // noise_max_deviation, absolute (not in multiples of sigma)
}

// DefaultNoiseParameters mirrors the historical convention of a clipped
// Gaussian with sigma=3.2 truncated at 6 sigma.
func DefaultNoiseParameters() NoiseParameters {
	return NoiseParameters{Distribution: NoiseGaussian, Sigma: 3.2, Bound: 19.2}
}

// NewSampler builds the error sampler selected by noise.Distribution.
func NewSampler(ring *Ring, noise NoiseParameters) Sampler {
	switch noise.Distribution {
	case NoiseCBD:
		return &CBDSampler{ring: ring, params: noise}
	default:
		return &GaussianSampler{ring: ring, params: noise}
	}
}

// liftSigned folds a signed integer value into the canonical residue class
// modulo q: v if v>=0, else v+q (reduced mod q for values of v wider than
// one modulus).
func liftSigned(v int64, q uint64) uint64 {
	if v >= 0 {
		return uint64(v) % q
	}
	m := uint64(-v) % q
	if m == 0 {
		return 0
	}
	return q - m
}
