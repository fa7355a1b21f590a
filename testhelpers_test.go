package algotranspose

import (
	"math"
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxComplex128f(t *testing.T, got, want complex128, format string, args ...any) {
	t.Helper()
	assertApproxComplex128Tolf(t, got, want, 1e-9, format, args...)
}

func assertApproxComplex64f(t *testing.T, got, want complex64, tol float64, format string, args ...any) {
	t.Helper()
	assertApproxComplex128Tolf(t, complex128(got), complex128(want), tol, format, args...)
}

// assertComponentsWithin fails unless every real and imaginary component of
// got lies within tol of want.
func assertComponentsWithin(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}

	for i := range want {
		dr := math.Abs(real(got[i]) - real(want[i]))
		di := math.Abs(imag(got[i]) - imag(want[i]))

		if dr > tol || di > tol {
			t.Fatalf("index %d: got %v want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}
