package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
)

// KeyGenerator produces secret and public key pairs. The public key is, by
// construction, an encryption of zero under the secret key, so key
// generation is built directly on top of the symmetric zero-encryptor
// rather than duplicating its sampling and NTT bookkeeping.
type KeyGenerator struct {
	params Parameters
	enc    *Encryptor
}

// NewKeyGenerator builds a KeyGenerator bound to params.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{params: params, enc: NewEncryptor(params)}
}

// GenSecretKey draws a fresh ternary secret key and lifts it to NTT form,
// the representation a secret key is always kept in.
func (kgen *KeyGenerator) GenSecretKey() (*SecretKey, error) {
	r := kgen.params.RingQ()
	sk := NewSecretKey(kgen.params)

	rng, err := kgen.params.NewRNG()
	if err != nil {
		return nil, err
	}
	if err := ring.NewTernarySampler(r).Read(rng, sk.Value); err != nil {
		return nil, fmt.Errorf("rlwe: gen secret key: %w", err)
	}
	r.NTT(sk.Value)
	return sk, nil
}

// GenPublicKey derives the public key matching sk: an encryption of zero
// under sk, always in NTT form, with the seed never compressed (a public
// key must carry a full, directly usable a).
func (kgen *KeyGenerator) GenPublicKey(sk *SecretKey) (*PublicKey, error) {
	ct, err := kgen.enc.EncryptZeroSymmetric(sk, true, false)
	if err != nil {
		return nil, fmt.Errorf("rlwe: gen public key: %w", err)
	}
	return &PublicKey{Value: ct.Value}, nil
}

// GenKeyPair draws a fresh secret key and its matching public key.
func (kgen *KeyGenerator) GenKeyPair() (*SecretKey, *PublicKey, error) {
	sk, err := kgen.GenSecretKey()
	if err != nil {
		return nil, nil, err
	}
	pk, err := kgen.GenPublicKey(sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}
