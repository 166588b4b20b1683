package floatkey

import "math/big"

// BigFloat converts x to a [math/big.Float], storing the result in z (or a
// new value, if z is nil). Since big.Float has no NaN, NaN converts to nil,
// and z is left unmodified.
func (x Float64) BigFloat(z *big.Float) *big.Float {
	if x.kind == KindNaN {
		return nil
	}
	if z == nil {
		z = new(big.Float)
	}
	switch x.kind {
	case KindPosInf:
		return z.SetInf(false)
	case KindNegInf:
		return z.SetInf(true)
	default:
		return z.SetFloat64(x.value)
	}
}

// FromBigFloat converts a [math/big.Float] to the nearest [Float64], with nil
// representing NaN. Values too large for a float64 round to infinity.
func FromBigFloat(x *big.Float) Float64 {
	if x == nil {
		return NaN()
	}
	v, _ := x.Float64()
	return New(v)
}
