package algotranspose

import (
	"github.com/cwbudde/algo-transpose/internal/fft"
)

// Plan is a precomputed one-dimensional FFT of a fixed length.
//
// Any positive length is supported: powers of two run an iterative radix-2
// kernel, every other length a recursive mixed-radix Cooley-Tukey kernel.
// Forward is unnormalized; Inverse scales by 1/n.
//
// A Plan owns internal buffers and is not safe for concurrent use.
type Plan[T Complex] struct {
	n          int
	kernel     fft.Kernel[T]
	twiddle    []T
	invTwiddle []T
	// work is the kernel's own scratch.
	work []T
	// staging holds the input when dst and src alias.
	staging        []T
	stridedScratch []T
}

// NewPlan creates a plan for transforms of length n.
//
// Returns ErrInvalidLength if n < 1.
func NewPlan[T Complex](n int) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	kernel := fft.SelectKernel[T](n)

	return &Plan[T]{
		n:              n,
		kernel:         kernel,
		twiddle:        fft.ComputeTwiddleFactors[T](n),
		invTwiddle:     fft.ComputeInverseTwiddleFactors[T](n),
		work:           make([]T, kernel.ScratchLen),
		staging:        make([]T, n),
		stridedScratch: make([]T, n),
	}, nil
}

// NewPlan32 creates a complex64 plan of length n.
func NewPlan32(n int) (*Plan[complex64], error) {
	return NewPlan[complex64](n)
}

// NewPlan64 creates a complex128 plan of length n.
func NewPlan64(n int) (*Plan[complex128], error) {
	return NewPlan[complex128](n)
}

// Len returns the transform length.
func (p *Plan[T]) Len() int {
	return p.n
}

// ScratchLen returns the scratch length Process and ProcessInverse require.
func (p *Plan[T]) ScratchLen() int {
	return p.n
}

// Algorithm names the kernel family bound to this plan.
func (p *Plan[T]) Algorithm() string {
	return p.kernel.Algorithm.String()
}

// Forward computes the forward transform of src into dst.
// dst and src may be the same slice.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrLengthMismatch if either is not exactly Len() long.
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.transform(dst, src, false)
}

// Inverse computes the inverse transform of src into dst, scaled by 1/n.
// dst and src may be the same slice.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.transform(dst, src, true)
}

func (p *Plan[T]) transform(dst, src []T, inverse bool) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	if overlaps(dst, src) {
		copy(p.staging, src)
		src = p.staging
	}

	p.run(dst, src, inverse)

	return nil
}

// run executes the kernel on non-overlapping length-n slices.
func (p *Plan[T]) run(dst, src []T, inverse bool) {
	if inverse {
		p.kernel.Forward(dst, src, p.invTwiddle, p.work)
		fft.ScaleInPlace(dst, 1/float64(p.n))

		return
	}

	p.kernel.Forward(dst, src, p.twiddle, p.work)
}

// Process transforms every consecutive length-n row of buf in place.
// scratch must hold at least ScratchLen() elements; its contents on entry
// are irrelevant and undefined on return.
//
// Returns ErrNilSlice if buf or scratch is nil.
// Returns ErrLengthMismatch if len(buf) is not a multiple of Len() or
// scratch is too short.
func (p *Plan[T]) Process(buf, scratch []T) error {
	return p.process(buf, scratch, false)
}

// ProcessInverse is Process with the normalized inverse transform.
func (p *Plan[T]) ProcessInverse(buf, scratch []T) error {
	return p.process(buf, scratch, true)
}

func (p *Plan[T]) process(buf, scratch []T, inverse bool) error {
	if buf == nil || scratch == nil {
		return ErrNilSlice
	}

	if len(buf)%p.n != 0 || len(scratch) < p.n {
		return ErrLengthMismatch
	}

	if overlaps(buf, scratch[:p.n]) {
		return ErrAliasedBuffers
	}

	tmp := scratch[:p.n]
	for start := 0; start < len(buf); start += p.n {
		row := buf[start : start+p.n]
		copy(tmp, row)
		p.run(row, tmp, inverse)
	}

	return nil
}
