package rlwe

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/latticework/rlwezero/ring"
	"github.com/latticework/rlwezero/utils/sampling"
)

// fixedSeedFactory returns an RNGFactory that always derives a
// deterministic stream from seed, so that tests can exercise the
// determinism property (§8 #11) and the concrete scenarios of §8 that pin
// a fixed RNG seed (S1-S3).
func fixedSeedFactory(seed byte) RNGFactory {
	key := bytes.Repeat([]byte{seed}, sampling.SeedSize)
	return func() (sampling.PRNG, error) {
		return sampling.NewKeyedPRNG(key)
	}
}

func testParams(t *testing.T, N int, moduli []uint64) Parameters {
	t.Helper()
	params, err := NewParametersDefault(N, moduli)
	require.NoError(t, err)
	return params.WithRNGFactory(fixedSeedFactory(0x01))
}

// S1: N=1024, single SEAL-style NTT-friendly modulus, NTT-form asymmetric
// encryption of zero decrypts to (near) zero.
func TestAsymmetricEncryptZeroDecryptsNearZero(t *testing.T) {
	params := testParams(t, 1024, []uint64{0x7e00001})
	kgen := NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPair()
	require.NoError(t, err)

	enc := NewEncryptor(params)
	ct, err := enc.EncryptZeroAsymmetric(pk, true)
	require.NoError(t, err)
	require.True(t, ct.IsNTT)
	require.Equal(t, 1.0, ct.Scale)
	require.Equal(t, params.ID(), ct.ParmsID)

	dec := NewDecryptor(params, sk)
	noise := dec.DecryptZero(ct)

	assertSmallInfinityNorm(t, params.RingQ(), noise, 1<<20)
}

// S2: symmetric, save_seed=true: c1 carries the sentinel, and the seed
// reconstructs the same NTT-domain polynomial the forward path used.
func TestSymmetricSaveSeedProducesSentinelAndReconstructs(t *testing.T) {
	params := testParams(t, 1024, []uint64{0x7e00001})
	kgen := NewKeyGenerator(params)
	sk, err := kgen.GenSecretKey()
	require.NoError(t, err)

	enc := NewEncryptor(params)
	ct, err := enc.EncryptZeroSymmetric(sk, true, true)
	require.NoError(t, err)

	require.True(t, isSeedRecord(ct.Value[1]))

	seed := readSeedRecord(ct.Value[1], sampling.SeedSize)
	recon := params.RingQ().NewPoly()
	require.NoError(t, regeneratePublicPoly(params.RingQ(), seed, recon))

	// Property #8: (sk . c1 + extract_error(c0)) mod q == -c0. Since
	// is_ntt_form was true, the forward path used the raw sampled buffer
	// directly as the NTT-domain value of c1 (§9 "dual representation of
	// a"), so sk (dyadic) recon should equal -c0 up to the small error term
	// folded in afterwards. That error was added in NTT form, so the
	// difference is brought back to coefficient form before its norm is
	// checked.
	r := params.RingQ()
	skDotRecon := r.NewPoly()
	r.DyadicProduct(sk.Value, recon, skDotRecon)

	negC0 := r.NewPoly()
	r.Neg(ct.Value[0], negC0)

	errTerm := r.NewPoly()
	r.Sub(negC0, skDotRecon, errTerm)
	r.INTT(errTerm)
	assertSmallInfinityNorm(t, r, errTerm, 1<<20)
}

// S3: N=2048, two-modulus RNS, coefficient-form symmetric encryption
// without seed compression: decryption succeeds and c1 ends up in
// coefficient form (an inverse NTT was applied).
func TestSymmetricCoefficientFormTwoModuli(t *testing.T) {
	params := testParams(t, 2048, []uint64{0x7e00001, 0x7e0a001})
	kgen := NewKeyGenerator(params)
	sk, err := kgen.GenSecretKey()
	require.NoError(t, err)

	enc := NewEncryptor(params)
	ct, err := enc.EncryptZeroSymmetric(sk, false, false)
	require.NoError(t, err)
	require.False(t, ct.IsNTT)
	require.False(t, isSeedRecord(ct.Value[1]))

	dec := NewDecryptor(params, sk)
	noise := dec.DecryptZero(ct)
	assertSmallInfinityNorm(t, params.RingQ(), noise, 1<<20)
}

// Property #9: for every (is_ntt_form, save_seed) combination the emitted
// ciphertext's flags and scale match the request.
func TestSymmetricRepresentationFlagsAndScale(t *testing.T) {
	params := testParams(t, 1024, []uint64{0x7e00001})
	kgen := NewKeyGenerator(params)
	sk, err := kgen.GenSecretKey()
	require.NoError(t, err)
	enc := NewEncryptor(params)

	for _, isNTT := range []bool{true, false} {
		for _, saveSeed := range []bool{true, false} {
			ct, err := enc.EncryptZeroSymmetric(sk, isNTT, saveSeed)
			require.NoError(t, err)
			require.Equal(t, isNTT, ct.IsNTT)
			require.Equal(t, 1.0, ct.Scale)
		}
	}
}

// Property #10: seed demotion. A ring far too small to carry sentinel+seed
// forces save_seed back to false transparently.
func TestSymmetricSeedDemotion(t *testing.T) {
	// N=2 with a single small NTT-friendly modulus: only 2 words per
	// polynomial, nowhere near the 9 (sentinel + 8 seed words) required.
	r, err := ring.NewRing(2, []uint64{5})
	require.NoError(t, err)

	require.False(t, canCarrySeedRecord(r.NewPoly(), sampling.SeedSize))

	params, err := NewParameters(1024, []uint64{0x7e00001}, ring.DefaultNoiseParameters())
	require.NoError(t, err)
	params = params.WithRNGFactory(fixedSeedFactory(0x02))

	kgen := NewKeyGenerator(params)
	sk, err := kgen.GenSecretKey()
	require.NoError(t, err)

	enc := NewEncryptor(params)
	// N=1024/L=1 comfortably carries the seed, so exercise the positive
	// case here and rely on the canCarrySeedRecord unit check above for the
	// too-small case (constructing an actual too-small Parameters would
	// violate the supported-N set).
	ct, err := enc.EncryptZeroSymmetric(sk, true, true)
	require.NoError(t, err)
	require.True(t, isSeedRecord(ct.Value[1]))
}

// Property #11: determinism. Fixed RNG seed and fixed parameters produce
// byte-identical ciphertexts across independent runs.
func TestDeterminism(t *testing.T) {
	params := testParams(t, 1024, []uint64{0x7e00001})
	kgen := NewKeyGenerator(params)
	sk, err := kgen.GenSecretKey()
	require.NoError(t, err)

	enc := NewEncryptor(params)
	ct1, err := enc.EncryptZeroSymmetric(sk, true, false)
	require.NoError(t, err)
	ct2, err := enc.EncryptZeroSymmetric(sk, true, false)
	require.NoError(t, err)

	require.True(t, cmp.Equal(ct1.Value[0].Coeffs, ct2.Value[0].Coeffs))
	require.True(t, cmp.Equal(ct1.Value[1].Coeffs, ct2.Value[1].Coeffs))
}

// assertSmallInfinityNorm checks every stripe's centered coefficients fall
// within [-bound, bound], the §8 round-trip property that a zero-ciphertext
// decrypts to a polynomial with small infinity norm.
func assertSmallInfinityNorm(t *testing.T, r *ring.Ring, p ring.Poly, bound int64) {
	t.Helper()
	for j := range r.Moduli {
		for _, c := range CenteredCoefficients(r, j, p) {
			require.LessOrEqual(t, c, bound)
			require.GreaterOrEqual(t, c, -bound)
		}
	}
}
