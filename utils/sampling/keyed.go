package sampling

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is the public, seed-derivable random source used for symmetric
// encryption: a Blake2-family stream keyed by a freshly drawn seed, from
// which the uniform component "a" of a symmetric ciphertext is
// regenerated. Two KeyedPRNGs constructed from the same seed produce
// byte-identical output, which is what makes seed-compressed ciphertexts
// reconstructible.
type KeyedPRNG struct {
	xof blake2b.XOF
	key []byte
}

// NewKeyedPRNG derives a public PRNG from seed. seed is typically the
// [SeedSize]-byte value drawn from the bootstrap RNG in
// Encryptor.EncryptZeroSymmetric.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	if len(seed) == 0 || len(seed) > SeedSize {
		return nil, fmt.Errorf("sampling: seed must be between 1 and %d bytes, got %d", SeedSize, len(seed))
	}
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, fmt.Errorf("sampling: new keyed prng: %w", err)
	}
	key := make([]byte, len(seed))
	copy(key, seed)
	return &KeyedPRNG{xof: xof, key: key}, nil
}

// Read draws len(p) pseudorandom bytes from the stream.
func (k *KeyedPRNG) Read(p []byte) (int, error) {
	return k.xof.Read(p)
}

// Reset rewinds the stream back to its state immediately after
// construction, without changing the seed.
func (k *KeyedPRNG) Reset() {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, k.key)
	if err != nil {
		// The key was already validated in NewKeyedPRNG; this cannot fail.
		panic(fmt.Errorf("sampling: reset keyed prng: %w", err))
	}
	k.xof = xof
}

// Seed returns the seed this PRNG was derived from.
func (k *KeyedPRNG) Seed() []byte {
	return append([]byte(nil), k.key...)
}
