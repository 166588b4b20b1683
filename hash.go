package floatkey

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// sentinels for the non-finite kinds
const (
	hashPosInf uint64 = 314159
	hashNegInf uint64 = 1<<64 - 314159 // -314159 as a two's complement uint64
	hashNaN    uint64 = 8750061483581
)

// HashBits returns the canonical 64-bit input for hashing x, such that
// x == y implies x.HashBits() == y.HashBits().
//
// Finite values use their IEEE 754 bits, with both zeros mapped to 0. Each of
// the other kinds uses a fixed sentinel. Sentinels may collide with the bits
// of some (unusual) finite values, which is fine, this is a hash.
func (x Float64) HashBits() uint64 {
	switch x.kind {
	case KindPosInf:
		return hashPosInf
	case KindNegInf:
		return hashNegInf
	case KindNaN:
		return hashNaN
	}
	if x.value == 0 {
		return 0
	}
	return math.Float64bits(x.value)
}

// WriteHash writes [Float64.HashBits] to h, little-endian.
func (x Float64) WriteHash(h *maphash.Hash) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x.HashBits())
	_, _ = h.Write(b[:])
}

// Hash returns a seeded hash of x. Equal values have equal hashes, for the
// same seed.
func (x Float64) Hash(seed maphash.Seed) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x.HashBits())
	return maphash.Bytes(seed, b[:])
}
