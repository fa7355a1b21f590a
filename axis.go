package algotranspose

import "fmt"

// Transform is the one-axis transform AxisTransform builds on. Process
// transforms every consecutive Len()-element row of buf in place, using
// scratch of at least ScratchLen() elements. *Plan satisfies it.
type Transform[T any] interface {
	Len() int
	ScratchLen() int
	Process(buf, scratch []T) error
}

// Axis names the dimension of a row-major rows x cols matrix a transform
// runs along.
type Axis int

const (
	// Axis0 transforms every column.
	Axis0 Axis = 0
	// Axis1 transforms every row.
	Axis1 Axis = 1
)

func (a Axis) String() string {
	switch a {
	case Axis0:
		return "axis0"
	case Axis1:
		return "axis1"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisTransform applies fn along one axis of the rows x cols matrix buf.
//
// Axis1 runs fn directly over the rows. Axis0 transposes, runs fn over the
// rows of the transpose (the original columns) and transposes back. When
// scratch holds at least rows*cols elements the transposes go out of place
// through scratch and buf serves as the transform scratch; otherwise they
// run in place with scratch as workspace, which then needs at least
// max(2, fn.ScratchLen()) elements.
//
// fn.Len() must equal cols for Axis1 and rows for Axis0.
func AxisTransform[T any](buf, scratch []T, rows, cols int, fn Transform[T], axis Axis) error {
	n, err := elementCount(rows, cols)
	if err != nil {
		return err
	}

	if len(buf) != n {
		return fmt.Errorf("%w: buf %d, want %dx%d", ErrInvalidShape, len(buf), rows, cols)
	}

	if axis != Axis0 && axis != Axis1 {
		return ErrInvalidAxis
	}

	if n == 0 {
		return nil
	}

	if axis == Axis1 {
		if fn.Len() != cols {
			return fmt.Errorf("%w: transform length %d, %d columns", ErrLengthMismatch, fn.Len(), cols)
		}

		return fn.Process(buf, scratch)
	}

	if fn.Len() != rows {
		return fmt.Errorf("%w: transform length %d, %d rows", ErrLengthMismatch, fn.Len(), rows)
	}

	if len(scratch) >= n {
		return columnsOutOfPlace(buf, scratch[:n], rows, cols, fn)
	}

	return columnsInPlace(buf, scratch, rows, cols, fn)
}

func columnsOutOfPlace[T any](buf, scratch []T, rows, cols int, fn Transform[T]) error {
	if err := Transpose(scratch, buf, rows, cols); err != nil {
		return err
	}

	if err := fn.Process(scratch, buf); err != nil {
		return err
	}

	return Transpose(buf, scratch, cols, rows)
}

func columnsInPlace[T any](buf, scratch []T, rows, cols int, fn Transform[T]) error {
	if need := max(2, fn.ScratchLen()); len(scratch) < need {
		return fmt.Errorf("%w: %d elements, need %d", ErrWorkspaceTooSmall, len(scratch), need)
	}

	if err := TransposeInPlace(buf, scratch, rows, cols); err != nil {
		return err
	}

	if err := fn.Process(buf, scratch); err != nil {
		return err
	}

	return TransposeInPlace(buf, scratch, cols, rows)
}

// FFT2D runs rowFFT along every row and then colFFT along every column of
// the rows x cols matrix buf, in place.
func FFT2D[T any](buf, scratch []T, rows, cols int, rowFFT, colFFT Transform[T]) error {
	if err := AxisTransform(buf, scratch, rows, cols, rowFFT, Axis1); err != nil {
		return fmt.Errorf("rows: %w", err)
	}

	if err := AxisTransform(buf, scratch, rows, cols, colFFT, Axis0); err != nil {
		return fmt.Errorf("columns: %w", err)
	}

	return nil
}
