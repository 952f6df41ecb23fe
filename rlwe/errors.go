package rlwe

import (
	"errors"

	"github.com/latticework/rlwezero/ring"
)

// Callers distinguish failure categories with errors.Is. Where one of these
// is returned, it is wrapped with context via fmt.Errorf("...: %w", ...).
// Errors raised while a sampler draws its randomness, or by NewKeyedPRNG,
// are passed up wrapped in their own context and carry none of these
// sentinels, except ErrUnsupportedParameter from the CBD sampler.
var (
	// ErrInvalidArgument signals a key that does not match parameters
	// (checked only when Parameters.Debug is set) or a malformed parameter
	// structure.
	ErrInvalidArgument = errors.New("rlwe: invalid argument")

	// ErrUnsupportedParameter signals the CBD sampler invoked with sigma
	// other than 3.2; re-exported from ring for callers that only import
	// rlwe.
	ErrUnsupportedParameter = ring.ErrUnsupportedParameter

	// ErrRngFailure signals the underlying entropy source failed.
	ErrRngFailure = errors.New("rlwe: rng failure")

	// ErrAllocationFailure signals the scratch pool could not satisfy a
	// request. The pool in this implementation never actually fails to
	// allocate (sync.Pool falls back to the runtime allocator), so this is
	// reserved for future pool implementations with a hard capacity.
	ErrAllocationFailure = errors.New("rlwe: allocation failure")
)
