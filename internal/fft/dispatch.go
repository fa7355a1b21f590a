package fft

import (
	"github.com/cwbudde/algo-transpose/internal/fftypes"
	m "github.com/cwbudde/algo-transpose/internal/math"
)

// KernelFunc is a type alias for the fixed-size kernel signature.
type KernelFunc[T Complex] = fftypes.KernelFunc[T]

// Algorithm names the kernel family chosen for a length.
type Algorithm uint8

const (
	AlgorithmIdentity Algorithm = iota
	AlgorithmRadix2
	AlgorithmMixedRadix
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmIdentity:
		return "identity"
	case AlgorithmRadix2:
		return "radix2"
	case AlgorithmMixedRadix:
		return "mixedradix"
	default:
		return "unknown"
	}
}

// Kernel is a transform of one fixed length together with the scratch
// length it needs.
type Kernel[T Complex] struct {
	Algorithm  Algorithm
	Forward    KernelFunc[T]
	ScratchLen int
}

// SelectKernel binds the kernel for length n. n must be positive.
func SelectKernel[T Complex](n int) Kernel[T] {
	switch {
	case n == 1:
		return Kernel[T]{
			Algorithm: AlgorithmIdentity,
			Forward: func(dst, src, _, _ []T) {
				dst[0] = src[0]
			},
		}
	case m.IsPowerOf2(n):
		bitrev := m.ComputeBitReversalIndices(n)

		return Kernel[T]{
			Algorithm: AlgorithmRadix2,
			Forward: func(dst, src, twiddle, _ []T) {
				ditRadix2(dst, src, twiddle, bitrev)
			},
		}
	default:
		factors := m.Factorize(n)

		return Kernel[T]{
			Algorithm: AlgorithmMixedRadix,
			Forward: func(dst, src, twiddle, scratch []T) {
				mixedRadix(dst[:n], src[:n], 1, n, factors, twiddle, 1, scratch)
			},
			ScratchLen: m.MaxFactor(factors),
		}
	}
}
