// Package fft holds the one-dimensional FFT kernels behind Plan: an
// iterative radix-2 decimation-in-time kernel for powers of two and a
// recursive mixed-radix Cooley-Tukey kernel for every other length.
package fft

import (
	"math"

	"github.com/cwbudde/algo-transpose/internal/fftypes"
	m "github.com/cwbudde/algo-transpose/internal/math"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of unity)
// for a size-n FFT: W_n^k = exp(-2*pi*i*k/n) for k = 0..n-1.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := range n {
		angle := -m.TwoPi * float64(k) / float64(n)
		re := math.Cos(angle)
		im := math.Sin(angle)
		twiddle[k] = complexFromFloat64[T](re, im)
	}

	return twiddle
}

// ComputeInverseTwiddleFactors returns the conjugated twiddle table used
// by inverse transforms.
func ComputeInverseTwiddleFactors[T Complex](n int) []T {
	twiddle := ComputeTwiddleFactors[T](n)
	for k := range twiddle {
		twiddle[k] = conj(twiddle[k])
	}

	return twiddle
}

// complexFromFloat64 creates a complex number of type T from float64 components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}

// ConjugateOf returns the complex conjugate of val.
func ConjugateOf[T Complex](val T) T {
	return conj(val)
}
