package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
	"github.com/latticework/rlwezero/utils/sampling"
)

// EncryptZeroSymmetric fills a fresh ciphertext with (c_0, c_1) where
// c_0 = -(a*s + e) mod q, c_1 = a, and a is uniform over the ring drawn
// from a seed-derivable public PRNG. If saveSeed is honored, c_1 is
// replaced by a compact seed record instead of the full polynomial for a.
func (enc *Encryptor) EncryptZeroSymmetric(sk *SecretKey, isNTTForm, saveSeed bool) (ct *Ciphertext, err error) {
	if err := enc.checkSecretKey(sk); err != nil {
		return nil, err
	}

	r := enc.params.RingQ()

	// Step 1: resize destination to (2, parms_id), set flags, scale=1.
	ct, err = NewCiphertext(enc.params, 2)
	if err != nil {
		return nil, err
	}
	ct.IsNTT = isNTTForm
	c0, c1 := ct.Value[0], ct.Value[1]

	// Seed demotion: if the polynomial is too small to carry sentinel+seed,
	// silently fall back to a full polynomial.
	if saveSeed && !canCarrySeedRecord(c1, sampling.SeedSize) {
		saveSeed = false
	}

	// Step 2: draw the public seed from the bootstrap RNG and construct the
	// public RNG from it.
	bootstrap, err := enc.params.NewRNG()
	if err != nil {
		return nil, err
	}
	publicSeed, err := bootstrap.Bytes(sampling.SeedSize)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt zero symmetric: %w: %v", ErrRngFailure, err)
	}
	keyedPRNG, err := sampling.NewKeyedPRNG(publicSeed)
	if err != nil {
		return nil, fmt.Errorf("rlwe: encrypt zero symmetric: %w", err)
	}
	publicRNG := sampling.NewUint32Source(keyedPRNG)

	// Step 3: sample a uniform into c1. The raw sampler output is itself a
	// valid NTT-domain uniform element; a real forward transform is only
	// required when the caller wants coefficient-form output AND the seed
	// must reconstruct the same NTT-domain value later.
	if err := ring.NewUniformSampler(r).Read(publicRNG, c1); err != nil {
		return nil, fmt.Errorf("rlwe: encrypt zero symmetric: %w", err)
	}
	if !isNTTForm && saveSeed {
		r.NTT(c1)
	}

	// Step 4: sample the error into scratch.
	e := enc.pool.Get()
	defer enc.pool.Put(e)
	if err := enc.errorSampler().Read(bootstrap, *e); err != nil {
		return nil, fmt.Errorf("rlwe: encrypt zero symmetric: %w", err)
	}

	// Step 5: c0 = -(sk (dyadic) c1 + e), in the requested representation.
	r.DyadicProduct(sk.Value, c1, c0)
	if isNTTForm {
		r.NTT(*e)
	} else {
		r.INTT(c0)
	}
	r.Add(c0, *e, c0)
	r.Neg(c0, c0)

	// Step 6: return c1 to coefficient form if neither NTT output nor the
	// seed record will carry its NTT-domain value forward.
	if !isNTTForm && !saveSeed {
		r.INTT(c1)
	}

	// Step 7: compress c1 into a seed record.
	if saveSeed {
		writeSeedRecord(c1, publicSeed)
	}

	ct.Value[0], ct.Value[1] = c0, c1
	return ct, nil
}
