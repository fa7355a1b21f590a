// Package synth builds deterministic synthetic inputs for tests,
// benchmarks and the cross-validation command.
package synth

import "math/rand"

// Number is the set of element types Sequence can produce.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// ComplexRamp returns n values x + xi for x = 0..n-1.
func ComplexRamp(n int) []complex128 {
	out := make([]complex128, max(n, 0))
	for i := range out {
		out[i] = complex(float64(i), float64(i))
	}

	return out
}

// Sequence returns 0..n-1 converted to T, the row-major fill used for
// transpose checks.
func Sequence[T Number](n int) []T {
	out := make([]T, max(n, 0))
	for i := range out {
		out[i] = T(i)
	}

	return out
}

// RandomComplex returns n values with both components uniform in [-1, 1).
func RandomComplex(rnd *rand.Rand, n int) []complex128 {
	out := make([]complex128, max(n, 0))
	for i := range out {
		out[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return out
}

// ToComplex64 narrows a complex128 slice.
func ToComplex64(in []complex128) []complex64 {
	out := make([]complex64, len(in))
	for i, v := range in {
		out[i] = complex64(v)
	}

	return out
}
