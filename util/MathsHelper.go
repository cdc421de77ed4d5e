package util

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}

func Abs[T constraints.Signed | constraints.Float](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// AlmostEqual reports whether a and b are within eps of each other.
// Equal infinities compare equal, NaN never does.
func AlmostEqual[T constraints.Float](a T, b T, eps T) bool {
	if a == b {
		return true
	}
	return Abs(a-b) <= eps
}

// Clamp3 clamps v to the range spanned by a and b, in either order.
// A NaN in v or either bound is returned as is.
func Clamp3[T cmp.Ordered](v T, a T, b T) T {
	if isNan(v) {
		return v
	}
	if isNan(a) {
		return a
	}
	if isNan(b) {
		return b
	}
	lower := IfThenElse(a < b, a, b)
	upper := IfThenElse(a < b, b, a)
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
