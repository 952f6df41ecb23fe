package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
)

// SecretKey is a single polynomial, always kept in NTT form.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey allocates a zeroed secret key sized for params.
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: params.RingQ().NewPoly()}
}

// PublicKey is a ciphertext-shaped object of size k >= 2, always in NTT
// form: it is the output of an encryption of zero under the corresponding
// secret key.
type PublicKey struct {
	Value []ring.Poly
}

// NewPublicKey allocates a zeroed public key of degree k sized for params.
func NewPublicKey(params Parameters, k int) (*PublicKey, error) {
	if k < 2 {
		return nil, fmt.Errorf("rlwe: %w: public key degree must be >= 2, got %d", ErrInvalidArgument, k)
	}
	value := make([]ring.Poly, k)
	for i := range value {
		value[i] = params.RingQ().NewPoly()
	}
	return &PublicKey{Value: value}, nil
}

// Degree returns k, the number of polynomials making up the key.
func (pk *PublicKey) Degree() int { return len(pk.Value) }
