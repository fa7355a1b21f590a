package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
)

func complexNear64(a, b complex64, tol float32) bool {
	return math.Abs(float64(real(a)-real(b))) <= float64(tol) &&
		math.Abs(float64(imag(a)-imag(b))) <= float64(tol)
}

func complexNear128(a, b complex128) bool {
	return cmplx.Abs(a-b) <= 1e-9*math.Max(1, cmplx.Abs(b))
}

// naiveDFT is the O(n^2) definition, used as the oracle.
func naiveDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j := range n {
			angle := sign * 2 * math.Pi * float64(j*k%n) / float64(n)
			sum += x[j] * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}

func randomComplex128(n int, seed int64) []complex128 {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return out
}

func maxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		worst = math.Max(worst, cmplx.Abs(a[i]-b[i]))
	}

	return worst
}
