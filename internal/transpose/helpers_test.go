package transpose

import "fmt"

// sequence returns 0..n-1.
func sequence(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}

	return v
}

// reference is the textbook transpose used as the oracle in tests.
func reference[T any](src []T, rows, cols int) []T {
	dst := make([]T, len(src))
	for r := range rows {
		for c := range cols {
			dst[c*rows+r] = src[r*cols+c]
		}
	}

	return dst
}

type shape struct {
	rows, cols int
}

func (s shape) String() string {
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}
