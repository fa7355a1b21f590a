package fftypes

// KernelFunc computes one fixed-length transform from src into dst.
// dst and src must not overlap. twiddle holds the n roots of unity for the
// direction being computed, and scratch must hold at least the scratch
// length declared alongside the kernel. Any size-specific tables (bit
// reversal, factorization) are bound when the kernel is selected.
type KernelFunc[T Complex] func(dst, src, twiddle, scratch []T)
