package ring

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/latticework/rlwezero/utils/sampling"
)

// ErrUnsupportedParameter is returned when the centered-binomial sampler is
// invoked with a standard deviation other than 3.2.
var ErrUnsupportedParameter = errors.New("ring: unsupported parameter")

// cbdSigma is the only standard deviation the centered-binomial sampler
// accepts; it approximates a Gaussian of variance 3.2^2 = 10.24 via a
// hamming-weight construction.
const cbdSigma = 3.2

// CBDSampler draws each coefficient from a centered binomial distribution
// approximating N(0, 3.2^2), built from the hamming weight of six masked
// random bytes. Modeled on the eta-parameterized CBD samplers used in
// CBD-based KEMs such as Kyber, generalized here to a fixed 8+8+5-bit-per-
// side split.
type CBDSampler struct {
	ring   *Ring
	params NoiseParameters
}

// NewCBDSampler returns a centered-binomial sampler over ring. params.Sigma
// must equal 3.2 exactly.
func NewCBDSampler(ring *Ring, params NoiseParameters) *CBDSampler {
	return &CBDSampler{ring: ring, params: params}
}

// Read fills dst with a fresh centered-binomial polynomial in coefficient
// form. It fails with [ErrUnsupportedParameter] before touching dst if the
// configured sigma is not exactly 3.2.
func (s *CBDSampler) Read(rng *sampling.Uint32Source, dst Poly) error {
	if s.params.Sigma != cbdSigma {
		return fmt.Errorf("ring: cbd sampler: %w: sigma must be %v, got %v", ErrUnsupportedParameter, cbdSigma, s.params.Sigma)
	}
	if got, want := len(dst.Coeffs), len(s.ring.Moduli); got != want {
		return fmt.Errorf("ring: cbd sampler: destination has %d RNS stripes, ring has %d", got, want)
	}

	for i := 0; i < s.ring.N; i++ {
		x, err := rng.Bytes(6)
		if err != nil {
			return fmt.Errorf("ring: cbd sampler: %w", err)
		}

		// Restrict x[2] and x[5] to 5 bits each so that each side of the
		// difference contributes at most 8+8+5 = 21 ones.
		x[2] &= 0x1F
		x[5] &= 0x1F

		v := int64(bits.OnesCount8(x[0])) + int64(bits.OnesCount8(x[1])) + int64(bits.OnesCount8(x[2])) -
			int64(bits.OnesCount8(x[3])) - int64(bits.OnesCount8(x[4])) - int64(bits.OnesCount8(x[5]))

		for j, q := range s.ring.Moduli {
			dst.Coeffs[j][i] = liftSigned(v, q)
		}
	}
	return nil
}
