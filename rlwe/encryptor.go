package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
)

// Encryptor produces fresh encryptions of the zero plaintext, in either
// asymmetric or symmetric form. It owns a scratch pool that every call
// acquires scratch from and releases, with zeroization, on every exit path.
type Encryptor struct {
	params Parameters
	pool   *ring.Pool
}

// NewEncryptor builds an Encryptor bound to params.
func NewEncryptor(params Parameters) *Encryptor {
	return &Encryptor{params: params, pool: ring.NewPool(params.RingQ())}
}

// errorSampler returns the distribution sampler selected by the
// parameters' noise configuration.
func (enc *Encryptor) errorSampler() ring.Sampler {
	return ring.NewSampler(enc.params.RingQ(), enc.params.NoiseParameters())
}

// checkPublicKey runs a precondition check gated behind Parameters.Debug:
// the key's RNS shape must match the parameters it's about to be used
// under.
func (enc *Encryptor) checkPublicKey(pk *PublicKey) error {
	if !enc.params.Debug {
		return nil
	}
	L := enc.params.L()
	if pk.Degree() < 2 {
		return fmt.Errorf("rlwe: %w: public key degree %d < 2", ErrInvalidArgument, pk.Degree())
	}
	for i, p := range pk.Value {
		if len(p.Coeffs) != L {
			return fmt.Errorf("rlwe: %w: public key component %d has %d RNS stripes, parameters have %d", ErrInvalidArgument, i, len(p.Coeffs), L)
		}
	}
	return nil
}

// checkSecretKey runs the same shape precondition for a secret key.
func (enc *Encryptor) checkSecretKey(sk *SecretKey) error {
	if !enc.params.Debug {
		return nil
	}
	if L, got := enc.params.L(), len(sk.Value.Coeffs); got != L {
		return fmt.Errorf("rlwe: %w: secret key has %d RNS stripes, parameters have %d", ErrInvalidArgument, got, L)
	}
	return nil
}
