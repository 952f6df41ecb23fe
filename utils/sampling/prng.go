// Package sampling provides the two random sources the RLWE zero-ciphertext
// core draws from: a private bootstrap PRNG backed by the platform's
// cryptographic entropy source, and a public, seed-derivable PRNG used to
// regenerate the uniform component "a" of a symmetric ciphertext from a
// compressed seed. It also adapts either one to a uniform 32/64-bit integer
// source.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// PRNG is a byte-oriented cryptographic random source.
type PRNG interface {
	io.Reader
}

// SeedSize is the width, in bytes, of the seed a [KeyedPRNG] is derived
// from; it matches the maximum key length accepted by blake2b.
const SeedSize = 64

// cryptoPRNG wraps the platform entropy source as a [PRNG]. It backs the
// private bootstrap RNG: the one that produces secret material (error
// polynomials, secret-side randomness) and is never seed-derivable.
type cryptoPRNG struct{}

// NewPRNG returns a fresh bootstrap PRNG backed by crypto/rand.
func NewPRNG() (PRNG, error) {
	return cryptoPRNG{}, nil
}

func (cryptoPRNG) Read(p []byte) (int, error) {
	return io.ReadFull(rand.Reader, p)
}

// Uint32Source adapts a byte-oriented [PRNG] to a uniform 32-bit integer
// source: each draw consumes 4 bytes of RNG output, interpreted as a
// little-endian unsigned 32-bit value. It is stateless aside from the
// wrapped RNG reference.
type Uint32Source struct {
	rng PRNG
	buf [8]byte
}

// NewUint32Source wraps rng as a uniform integer source.
func NewUint32Source(rng PRNG) *Uint32Source {
	return &Uint32Source{rng: rng}
}

// Uint32 draws a uniform 32-bit value. Errors from the underlying RNG
// propagate unchanged.
func (s *Uint32Source) Uint32() (uint32, error) {
	if _, err := io.ReadFull(s.rng, s.buf[:4]); err != nil {
		return 0, fmt.Errorf("rng adapter: %w", err)
	}
	return binary.LittleEndian.Uint32(s.buf[:4]), nil
}

// Uint64 concatenates two 32-bit draws, high word first, into a uniform
// 64-bit value.
func (s *Uint32Source) Uint64() (uint64, error) {
	hi, err := s.Uint32()
	if err != nil {
		return 0, err
	}
	lo, err := s.Uint32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// Bytes draws n raw bytes directly from the wrapped RNG, bypassing the
// 32-bit framing; used by samplers that consume an irregular byte count
// (the ternary and centered-binomial samplers).
func (s *Uint32Source) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.rng, buf); err != nil {
		return nil, fmt.Errorf("rng adapter: %w", err)
	}
	return buf, nil
}
