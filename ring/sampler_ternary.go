package ring

import (
	"fmt"

	"github.com/latticework/rlwezero/utils/sampling"
)

// TernarySampler draws each coefficient uniformly from {-1, 0, +1}. It is
// used for secret keys and for the asymmetric encryptor's ephemeral
// secret u.
type TernarySampler struct {
	ring *Ring
}

// NewTernarySampler returns a ternary sampler over ring.
func NewTernarySampler(ring *Ring) *TernarySampler {
	return &TernarySampler{ring: ring}
}

// ternaryRejectionBound is a multiple of 3 (84*3); a drawn byte is
// rejected when it falls in [ternaryRejectionBound, 256) so that the
// surviving byte%3 is bias-free.
const ternaryRejectionBound = 252

// Read fills dst with a fresh ternary polynomial in coefficient form.
func (s *TernarySampler) Read(rng *sampling.Uint32Source, dst Poly) error {
	if got, want := len(dst.Coeffs), len(s.ring.Moduli); got != want {
		return fmt.Errorf("ring: ternary sampler: destination has %d RNS stripes, ring has %d", got, want)
	}

	for i := 0; i < s.ring.N; i++ {
		var r uint8
		for {
			b, err := rng.Bytes(1)
			if err != nil {
				return fmt.Errorf("ring: ternary sampler: %w", err)
			}
			if b[0] < ternaryRejectionBound {
				r = b[0] % 3
				break
			}
		}

		// r=0 -> -1 (stored as q-1), r=1 -> 0, r=2 -> +1.
		for j, q := range s.ring.Moduli {
			switch r {
			case 0:
				dst.Coeffs[j][i] = q - 1
			case 1:
				dst.Coeffs[j][i] = 0
			case 2:
				dst.Coeffs[j][i] = 1
			}
		}
	}
	return nil
}
