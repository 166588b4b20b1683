package floatkey

import (
	"errors"
	"fmt"
	"strconv"
	"unsafe"
)

const (
	strPosInf = "inf"
	strNegInf = "-inf"
	strNaN    = "NaN"
)

var (
	// ErrSyntax is returned (wrapped) by [Parse] if the text is not a valid
	// float literal.
	ErrSyntax = errors.New(`floatkey: invalid float literal`)
)

// String returns "inf", "-inf", or "NaN" for the special kinds, or the
// shortest representation of a finite value, as formatted by the fmt verb %v.
func (x Float64) String() string {
	b := x.Append(make([]byte, 0, 24), 'g', -1)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Append appends x to dst, formatting finite values like
// [strconv.AppendFloat] (with a bitSize of 64), and the other kinds as per
// [Float64.String].
func (x Float64) Append(dst []byte, fmt byte, prec int) []byte {
	switch x.kind {
	case KindPosInf:
		return append(dst, strPosInf...)
	case KindNegInf:
		return append(dst, strNegInf...)
	case KindNaN:
		return append(dst, strNaN...)
	default:
		return strconv.AppendFloat(dst, x.value, fmt, prec, 64)
	}
}

// Parse parses text using the grammar of [strconv.ParseFloat], which includes
// the (case-insensitive) tokens "inf" and "infinity", optionally signed, and
// "nan". Digits may be separated by underscores, e.g. "1_000" or "0x1_0p0",
// as permitted for Go number literals.
//
// Literals that are out of range are not errors, and round to ±Inf or ±0,
// like any other float literal would. All other failures wrap [ErrSyntax].
func Parse(text string) (Float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var e *strconv.NumError
		if !errors.As(err, &e) || e.Err != strconv.ErrRange {
			return Float64{}, fmt.Errorf(`%w: %q`, ErrSyntax, text)
		}
	}
	return New(v), nil
}

// MustParse is like [Parse], but panics on error.
func MustParse(text string) Float64 {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements [encoding.TextMarshaler], using [Float64.String].
func (x Float64) MarshalText() ([]byte, error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], using [Parse].
func (x *Float64) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
