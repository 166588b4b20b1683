package floatkey

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

type (
	// Float64 is a float64 classified into one of four kinds. The zero value is
	// the finite value 0.
	//
	// Values must be constructed via [New] (or one of its siblings), and are
	// immutable.
	Float64 struct {
		// value is always 0 unless kind is KindFinite
		value float64
		kind  Kind
	}

	// Kind identifies the variant of a [Float64].
	Kind uint8
)

const (
	// KindFinite is any finite value, including both signed zeros, and
	// subnormals.
	KindFinite Kind = iota
	// KindPosInf is positive infinity.
	KindPosInf
	// KindNegInf is negative infinity.
	KindNegInf
	// KindNaN is any NaN, regardless of sign or payload.
	KindNaN
)

// New classifies raw. It never fails, every bit pattern maps to exactly one
// kind.
func New(raw float64) Float64 {
	switch {
	case math.IsNaN(raw):
		return Float64{kind: KindNaN}
	case math.IsInf(raw, 1):
		return Float64{kind: KindPosInf}
	case math.IsInf(raw, -1):
		return Float64{kind: KindNegInf}
	default:
		return Float64{kind: KindFinite, value: raw}
	}
}

// Of is [New] for any float type. A float32 NaN is a NaN, just the same.
func Of[T constraints.Float](raw T) Float64 {
	return New(float64(raw))
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float64 {
	if sign < 0 {
		return Float64{kind: KindNegInf}
	}
	return Float64{kind: KindPosInf}
}

// NaN returns the (single) NaN value.
func NaN() Float64 {
	return Float64{kind: KindNaN}
}

// Kind returns the variant of x.
func (x Float64) Kind() Kind {
	return x.kind
}

// Float64 converts x back into a float64. This is lossy only for NaN, which
// always converts to [math.NaN].
func (x Float64) Float64() float64 {
	switch x.kind {
	case KindPosInf:
		return math.Inf(1)
	case KindNegInf:
		return math.Inf(-1)
	case KindNaN:
		return math.NaN()
	default:
		return x.value
	}
}

func (x Float64) IsNaN() bool {
	return x.kind == KindNaN
}

// IsInf behaves like [math.IsInf].
func (x Float64) IsInf(sign int) bool {
	return sign >= 0 && x.kind == KindPosInf || sign <= 0 && x.kind == KindNegInf
}

func (x Float64) IsFinite() bool {
	return x.kind == KindFinite
}

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return `Finite`
	case KindPosInf:
		return `PositiveInfinity`
	case KindNegInf:
		return `NegativeInfinity`
	case KindNaN:
		return `NaN`
	default:
		return `Kind(` + strconv.Itoa(int(k)) + `)`
	}
}
