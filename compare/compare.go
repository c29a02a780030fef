package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse is a comparison function ordering values of ordered types in
// descending order.
func Reverse[T constraints.Ordered](a, b T) int {
	return Function(b, a)
}
