package floatkey

// Equal reports whether x and y are the same kind and, if finite, of equal
// value. It is equivalent to x == y. Notably, NaN equals NaN, and -0 equals
// +0.
func (x Float64) Equal(y Float64) bool {
	return x.kind == y.kind && x.value == y.value
}

// Compare behaves like [cmp.Compare], but is a total order, consistent with
// [Float64.Equal]:
//
//	-Inf < finite values < +Inf < NaN
func (x Float64) Compare(y Float64) int {
	if a, b := x.rank(), y.rank(); a != b {
		if a < b {
			return -1
		}
		return 1
	}
	// both kinds are the same, and value is 0 for all but finite
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether x sorts before y, see [Float64.Compare].
func (x Float64) Less(y Float64) bool {
	return x.Compare(y) < 0
}

// Compare is [Float64.Compare] as a function, e.g. for [slices.SortFunc].
func Compare(x, y Float64) int {
	return x.Compare(y)
}

func (x Float64) rank() int {
	switch x.kind {
	case KindNegInf:
		return 0
	case KindFinite:
		return 1
	case KindPosInf:
		return 2
	default:
		return 3
	}
}
