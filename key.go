package floatkey

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	signBit = 1 << 63
	keyZero = signBit
	keyNaN  = math.MaxUint64
)

var (
	// ErrKeyLength is returned by [DecodeKey] if the input is not exactly 8
	// bytes.
	ErrKeyLength = errors.New(`floatkey: invalid key length`)
)

// Key returns an order-preserving unsigned encoding of x, i.e.
// cmp.Compare(x.Key(), y.Key()) == x.Compare(y), for all x and y.
//
// Both zeros encode to the same key, and NaN encodes to [math.MaxUint64].
func (x Float64) Key() uint64 {
	switch x.kind {
	case KindNaN:
		return keyNaN
	case KindFinite:
		if x.value == 0 {
			return keyZero
		}
	}
	bits := math.Float64bits(x.Float64())
	if bits&signBit != 0 {
		// bigger negatives must sort first
		return ^bits
	}
	return bits | signBit
}

// AppendKey appends [Float64.Key] to dst, big-endian, such that
// [bytes.Compare] agrees with [Float64.Compare].
func (x Float64) AppendKey(dst []byte) []byte {
	return binary.BigEndian.AppendUint64(dst, x.Key())
}

// FromKey is the inverse of [Float64.Key]. It is total: keys that don't
// correspond to the output of Key, as they decode to a NaN bit pattern, are
// NaN.
func FromKey(k uint64) Float64 {
	if k&signBit != 0 {
		k &^= signBit
	} else {
		k = ^k
	}
	return New(math.Float64frombits(k))
}

// DecodeKey decodes a key encoded by [Float64.AppendKey].
func DecodeKey(b []byte) (Float64, error) {
	if len(b) != 8 {
		return Float64{}, ErrKeyLength
	}
	return FromKey(binary.BigEndian.Uint64(b)), nil
}
