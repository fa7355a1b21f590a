// Package fftypes holds the type constraints and function types shared by
// the FFT plan and its kernels.
package fftypes

// Complex is the constraint for element types an FFT plan can transform.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the constraint for the matching real component types.
type Float interface {
	~float32 | ~float64
}
