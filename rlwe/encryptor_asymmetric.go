package rlwe

import (
	"fmt"

	"github.com/latticework/rlwezero/ring"
)

// EncryptZeroAsymmetric fills a fresh ciphertext with (c_0, ..., c_{k-1})
// where c_t = pk_t * u + e_t, u ternary and each e_t drawn from the
// configured error distribution.
func (enc *Encryptor) EncryptZeroAsymmetric(pk *PublicKey, isNTTForm bool) (ct *Ciphertext, err error) {
	if err := enc.checkPublicKey(pk); err != nil {
		return nil, err
	}

	r := enc.params.RingQ()
	k := pk.Degree()

	// Step 1: resize destination to (k, parms_id), set flags, scale=1.
	ct, err = NewCiphertext(enc.params, k)
	if err != nil {
		return nil, err
	}
	ct.IsNTT = isNTTForm

	// Step 2: spawn a fresh RNG, shared by u and every e_t.
	rng, err := enc.params.NewRNG()
	if err != nil {
		return nil, err
	}

	u := enc.pool.Get()
	defer enc.pool.Put(u)

	eBuf := enc.pool.Get()
	defer enc.pool.Put(eBuf)

	// Step 3: sample u ternary in coefficient form, then lift to NTT form.
	if err := ring.NewTernarySampler(r).Read(rng, *u); err != nil {
		return nil, fmt.Errorf("rlwe: encrypt zero asymmetric: %w", err)
	}
	r.NTT(*u)

	// Step 4: destination_t = u (dyadic-product) pk_t, stripe by stripe;
	// demote to coefficient form if the caller asked for it.
	for t := 0; t < k; t++ {
		r.DyadicProduct(*u, pk.Value[t], ct.Value[t])
		if !isNTTForm {
			r.INTT(ct.Value[t])
		}
	}

	// Step 5: fold in a fresh error sample per component.
	eSampler := enc.errorSampler()
	for t := 0; t < k; t++ {
		if err := eSampler.Read(rng, *eBuf); err != nil {
			return nil, fmt.Errorf("rlwe: encrypt zero asymmetric: %w", err)
		}
		if isNTTForm {
			r.NTT(*eBuf)
		}
		r.Add(ct.Value[t], *eBuf, ct.Value[t])
	}

	return ct, nil
}
