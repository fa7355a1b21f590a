package algotranspose

import "errors"

// Sentinel errors returned by transpose and FFT operations.
var (
	// ErrInvalidShape is returned when a buffer does not hold exactly
	// rows*cols elements, a dimension is negative, or rows*cols overflows.
	ErrInvalidShape = errors.New("algotranspose: buffer length does not match shape")

	// ErrAliasedBuffers is returned when the destination and source of an
	// out-of-place transpose share memory.
	ErrAliasedBuffers = errors.New("algotranspose: destination overlaps source")

	// ErrWorkspaceTooSmall is returned when an in-place transpose is given
	// fewer than two workspace elements for a matrix with at least two.
	ErrWorkspaceTooSmall = errors.New("algotranspose: workspace too small")

	// ErrInvalidLength is returned when the FFT size is not positive.
	ErrInvalidLength = errors.New("algotranspose: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algotranspose: nil slice")

	// ErrLengthMismatch is returned when input/output or scratch sizes don't
	// match the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("algotranspose: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or doesn't align with data).
	ErrInvalidStride = errors.New("algotranspose: invalid stride")

	// ErrInvalidAxis is returned for an axis other than Axis0 or Axis1.
	ErrInvalidAxis = errors.New("algotranspose: invalid axis")
)
