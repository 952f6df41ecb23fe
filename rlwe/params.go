package rlwe

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/latticework/rlwezero/ring"
	"github.com/latticework/rlwezero/utils/sampling"
)

// ParmsID fingerprints an encryption-parameter set: the polynomial degree
// and the modulus chain, hashed with blake3. Ciphertexts and keys carry it
// so that an encryptor never silently operates under parameters that don't
// match the caller's expectation.
type ParmsID [32]byte

// Parameters is the opaque descriptor for a parameter set: the ring degree,
// the RNS modulus chain, the RNG factory, and the noise configuration
// threaded explicitly rather than left as hidden process-wide globals.
type Parameters struct {
	ring       *ring.Ring
	id         ParmsID
	noise      ring.NoiseParameters
	rngFactory RNGFactory

	// Debug enables precondition checks on keys passed to an encryptor:
	// when true, encryptors verify that a supplied key's shape matches
	// these parameters before using it.
	Debug bool
}

// RNGFactory spawns fresh cryptographic RNGs. The default factory backs
// onto crypto/rand; tests substitute a deterministic factory via
// [Parameters.WithRNGFactory] to get reproducible ciphertexts.
type RNGFactory func() (sampling.PRNG, error)

// NewParameters validates N and the modulus chain and builds the
// corresponding ring, the NTT and Barrett tables it carries, and a stable
// ParmsID fingerprint.
func NewParameters(N int, moduli []uint64, noise ring.NoiseParameters) (Parameters, error) {
	switch N {
	case 1024, 2048, 4096, 8192, 16384, 32768:
	default:
		return Parameters{}, fmt.Errorf("rlwe: %w: N=%d is not one of the supported degrees", ErrInvalidArgument, N)
	}

	r, err := ring.NewRing(N, moduli)
	if err != nil {
		return Parameters{}, fmt.Errorf("rlwe: %w: %v", ErrInvalidArgument, err)
	}

	return Parameters{
		ring:  r,
		id:    computeParmsID(N, moduli),
		noise: noise,
	}, nil
}

// NewParametersDefault builds Parameters with the default noise
// configuration (clipped Gaussian, sigma=3.2, bound=19.2).
func NewParametersDefault(N int, moduli []uint64) (Parameters, error) {
	return NewParameters(N, moduli, ring.DefaultNoiseParameters())
}

func computeParmsID(N int, moduli []uint64) ParmsID {
	h := blake3.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(N))
	_, _ = h.Write(buf[:])
	for _, q := range moduli {
		binary.LittleEndian.PutUint64(buf[:], q)
		_, _ = h.Write(buf[:])
	}
	var id ParmsID
	copy(id[:], h.Sum(nil))
	return id
}

// N returns the polynomial modulus degree.
func (p Parameters) N() int { return p.ring.N }

// L returns the number of RNS moduli in the chain.
func (p Parameters) L() int { return len(p.ring.Moduli) }

// Q returns the RNS modulus chain.
func (p Parameters) Q() []uint64 { return append([]uint64(nil), p.ring.Moduli...) }

// RingQ returns the underlying ring.
func (p Parameters) RingQ() *ring.Ring { return p.ring }

// ID returns the parameter fingerprint carried by ciphertexts and keys.
func (p Parameters) ID() ParmsID { return p.id }

// NoiseParameters returns the error-distribution configuration this
// parameter set was built with.
func (p Parameters) NoiseParameters() ring.NoiseParameters { return p.noise }

// WithRNGFactory returns a copy of p that spawns RNGs via factory instead
// of the default crypto/rand-backed bootstrap source.
func (p Parameters) WithRNGFactory(factory RNGFactory) Parameters {
	p.rngFactory = factory
	return p
}

// NewRNG spawns a fresh bootstrap RNG adapter from the parameter factory;
// a new RNG handle is requested for each encryptor invocation.
func (p Parameters) NewRNG() (*sampling.Uint32Source, error) {
	factory := p.rngFactory
	if factory == nil {
		factory = func() (sampling.PRNG, error) { return sampling.NewPRNG() }
	}
	prng, err := factory()
	if err != nil {
		return nil, fmt.Errorf("rlwe: %w: %v", ErrRngFailure, err)
	}
	return sampling.NewUint32Source(prng), nil
}
