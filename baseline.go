package algotranspose

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Baseline computes two-axis transforms of complex128 matrices with gonum's
// fourier.CmplxFFT, gathering each line into a contiguous buffer and
// scattering the result back. It is the reference the transpose-based
// strategy is validated and benchmarked against.
//
// A Baseline is not safe for concurrent use.
type Baseline struct {
	rows, cols int
	rowFFT     *fourier.CmplxFFT
	colFFT     *fourier.CmplxFFT
	line       []complex128
}

// NewBaseline prepares a Baseline for rows x cols matrices.
//
// Returns ErrInvalidShape unless both dimensions are positive.
func NewBaseline(rows, cols int) (*Baseline, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}

	if _, err := elementCount(rows, cols); err != nil {
		return nil, err
	}

	return &Baseline{
		rows:   rows,
		cols:   cols,
		rowFFT: fourier.NewCmplxFFT(cols),
		colFFT: fourier.NewCmplxFFT(rows),
		line:   make([]complex128, max(rows, cols)),
	}, nil
}

// Axis writes the forward, unnormalized transform of src along axis into
// dst. dst and src may be the same slice.
func (b *Baseline) Axis(dst, src []complex128, axis Axis) error {
	n := b.rows * b.cols
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: src %d, dst %d, want %dx%d", ErrInvalidShape, len(src), len(dst), b.rows, b.cols)
	}

	switch axis {
	case Axis1:
		line := b.line[:b.cols]
		for r := range b.rows {
			copy(line, src[r*b.cols:(r+1)*b.cols])
			b.rowFFT.Coefficients(dst[r*b.cols:(r+1)*b.cols], line)
		}
	case Axis0:
		line := b.line[:b.rows]
		for c := range b.cols {
			for r := range b.rows {
				line[r] = src[r*b.cols+c]
			}

			b.colFFT.Coefficients(line, line)

			for r, v := range line {
				dst[r*b.cols+c] = v
			}
		}
	default:
		return ErrInvalidAxis
	}

	return nil
}

// FFT2D writes the two-axis transform of src into dst: rows first, then
// columns.
func (b *Baseline) FFT2D(dst, src []complex128) error {
	if err := b.Axis(dst, src, Axis1); err != nil {
		return err
	}

	return b.Axis(dst, dst, Axis0)
}
