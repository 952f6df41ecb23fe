package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
)

// Ciphertext is an ordered sequence of k >= 2 polynomials over the same
// RNS, plus the representation flag, a parameter fingerprint, and a scale
// field. This core always leaves Scale at 1.
type Ciphertext struct {
	Value   []ring.Poly
	IsNTT   bool
	ParmsID ParmsID
	Scale   float64
}

// NewCiphertext allocates a zeroed ciphertext of degree k sized for params.
func NewCiphertext(params Parameters, k int) (*Ciphertext, error) {
	if k < 2 {
		return nil, fmt.Errorf("rlwe: %w: ciphertext degree must be >= 2, got %d", ErrInvalidArgument, k)
	}
	value := make([]ring.Poly, k)
	for i := range value {
		value[i] = params.RingQ().NewPoly()
	}
	return &Ciphertext{Value: value, ParmsID: params.ID(), Scale: 1}, nil
}

// Degree returns k, the number of polynomials making up the ciphertext.
func (ct *Ciphertext) Degree() int { return len(ct.Value) }
