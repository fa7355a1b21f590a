package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
// It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// LargestPowerOfTwoBelow returns the largest power of two strictly less than m.
// Example: LargestPowerOfTwoBelow(7) = 4, LargestPowerOfTwoBelow(8) = 4.
// It returns 0 for m <= 1.
func LargestPowerOfTwoBelow(m int) int {
	if m <= 1 {
		return 0
	}

	return 1 << (bits.Len(uint(m-1)) - 1)
}
