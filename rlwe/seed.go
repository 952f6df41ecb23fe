package rlwe

import (
	"encoding/binary"

	"github.com/latticework/rlwezero/ring"
	"github.com/latticework/rlwezero/utils/sampling"
)

// seedSentinel marks a polynomial word as the start of a seed record: no
// valid uniform RNS coefficient can equal it because every supported
// modulus is below 2^62 (asserted in [Parameters] validation via the
// 61-bit bound in [ring.NewRing]).
const seedSentinel = ^uint64(0)

// flatWords treats a polynomial's RNS stripes as one contiguous sequence of
// L*N words, the layout a seed record is persisted into: sentinel at word
// 0, seed bytes starting at word 1, trailing words unspecified.
func flatWords(p ring.Poly) int {
	if len(p.Coeffs) == 0 {
		return 0
	}
	return len(p.Coeffs) * len(p.Coeffs[0])
}

func flatSet(p ring.Poly, index int, v uint64) {
	n := len(p.Coeffs[0])
	p.Coeffs[index/n][index%n] = v
}

func flatGet(p ring.Poly, index int) uint64 {
	n := len(p.Coeffs[0])
	return p.Coeffs[index/n][index%n]
}

// seedWordsNeeded returns how many 64-bit words a seed of seedLen bytes
// occupies once packed, rounding up.
func seedWordsNeeded(seedLen int) int {
	return (seedLen + 7) / 8
}

// canCarrySeedRecord reports whether p has enough words to carry the
// sentinel plus a seed of seedLen bytes. When L*N is smaller than
// seed_words + 1, save_seed is forced back to false.
func canCarrySeedRecord(p ring.Poly, seedLen int) bool {
	return flatWords(p) >= seedWordsNeeded(seedLen)+1
}

// writeSeedRecord overwrites p with a seed record: sentinel word 0, then
// seed packed little-endian into 64-bit words starting at word 1. Trailing
// words are left untouched; readers ignore them.
func writeSeedRecord(p ring.Poly, seed []byte) {
	flatSet(p, 0, seedSentinel)

	word := 1
	for i := 0; i < len(seed); i += 8 {
		var buf [8]byte
		copy(buf[:], seed[i:min(i+8, len(seed))])
		flatSet(p, word, binary.LittleEndian.Uint64(buf[:]))
		word++
	}
}

// isSeedRecord reports whether p's word 0 carries the seed-record sentinel.
func isSeedRecord(p ring.Poly) bool {
	return flatWords(p) > 0 && flatGet(p, 0) == seedSentinel
}

// readSeedRecord extracts the seed packed by writeSeedRecord, given the
// original seed length in bytes.
func readSeedRecord(p ring.Poly, seedLen int) []byte {
	seed := make([]byte, 0, seedLen)
	word := 1
	for len(seed) < seedLen {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], flatGet(p, word))
		n := min(8, seedLen-len(seed))
		seed = append(seed, buf[:n]...)
		word++
	}
	return seed
}

// regeneratePublicPoly reconstructs the uniform polynomial a KeyedPRNG
// derived from seed would have produced, by re-running the uniform sampler
// against that keyed source. This is the deserialization-side half of the
// seed-compression contract.
func regeneratePublicPoly(r *ring.Ring, seed []byte, dst ring.Poly) error {
	keyed, err := sampling.NewKeyedPRNG(seed)
	if err != nil {
		return err
	}
	source := sampling.NewUint32Source(keyed)
	return ring.NewUniformSampler(r).Read(source, dst)
}
