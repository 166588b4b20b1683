// Package floatkey provides [Float64], a float64 wrapper with a total
// equality, ordering, and hash contract, so that floats may be used as map
// keys, set members, and sort keys, without NaN ruining everyone's day.
//
// Every raw value is classified exactly once, by [New], into one of four
// kinds: finite, positive infinity, negative infinity, or NaN. All NaN bit
// patterns collapse to a single value (the payload is discarded), and the two
// signed zeros are equal, and hash identically.
//
// The ordering is:
//
//	-Inf < finite values (numeric order) < +Inf < NaN
//
// [Float64] is comparable, and the built-in == operator agrees with
// [Float64.Equal], meaning it may be used directly as a Go map key.
//
// Also provided are encodings: a tagged-union JSON representation (see
// [Float64.MarshalJSON]), a text representation (see [Parse]), and an
// order-preserving 64-bit key (see [Float64.Key]).
package floatkey
