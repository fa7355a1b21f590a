package algotranspose

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-transpose/internal/transpose"
)

// Strategy selects how an out-of-place transpose walks the matrix.
type Strategy = transpose.Strategy

const (
	// StrategyAuto picks by element count: direct up to 256 elements,
	// tiled up to 512*512, recursive above.
	StrategyAuto = transpose.StrategyAuto
	// StrategyDirect copies element by element in source order.
	StrategyDirect = transpose.StrategyDirect
	// StrategyTiled copies 16x16 blocks.
	StrategyTiled = transpose.StrategyTiled
	// StrategyRecursive bisects the larger dimension before tiling.
	StrategyRecursive = transpose.StrategyRecursive
)

// SelectStrategy reports the strategy Transpose uses for a rows x cols
// matrix.
func SelectStrategy(rows, cols int) Strategy {
	return transpose.Select(rows, cols)
}

// Transpose writes the transpose of the rows x cols matrix src into dst.
// Afterwards dst is a cols x rows matrix with dst[c*rows+r] == src[r*cols+c].
//
// Returns ErrInvalidShape if either slice does not hold rows*cols elements.
// Returns ErrAliasedBuffers if dst and src share memory.
func Transpose[T any](dst, src []T, rows, cols int) error {
	return TransposeWith(StrategyAuto, dst, src, rows, cols)
}

// TransposeWith is Transpose with an explicit strategy. All strategies
// produce identical output.
func TransposeWith[T any](strategy Strategy, dst, src []T, rows, cols int) error {
	n, err := elementCount(rows, cols)
	if err != nil {
		return err
	}

	if len(src) != n || len(dst) != n {
		return fmt.Errorf("%w: src %d, dst %d, want %dx%d", ErrInvalidShape, len(src), len(dst), rows, cols)
	}

	if overlaps(dst, src) {
		return ErrAliasedBuffers
	}

	transpose.With(strategy, dst, src, rows, cols)

	return nil
}

// TransposeInPlace overwrites the rows x cols matrix buf with its cols x rows
// transpose, using workspace as scratch. Any length from 2 up to rows*cols
// is accepted; elements beyond rows*cols are ignored. Workspace contents on
// entry are irrelevant and undefined on return.
//
// Returns ErrInvalidShape if buf does not hold rows*cols elements.
// Returns ErrWorkspaceTooSmall if workspace holds fewer than min(2, rows*cols)
// elements.
func TransposeInPlace[T any](buf, workspace []T, rows, cols int) error {
	n, err := elementCount(rows, cols)
	if err != nil {
		return err
	}

	if len(buf) != n {
		return fmt.Errorf("%w: buf %d, want %dx%d", ErrInvalidShape, len(buf), rows, cols)
	}

	if len(workspace) < min(2, n) {
		return fmt.Errorf("%w: %d elements", ErrWorkspaceTooSmall, len(workspace))
	}

	if overlaps(buf, workspace) {
		return ErrAliasedBuffers
	}

	transpose.InPlace(buf, workspace[:min(len(workspace), n)], rows, cols)

	return nil
}

// TransposeSquare transposes the n x n matrix buf in place without any
// workspace.
//
// Returns ErrInvalidShape if buf does not hold n*n elements.
func TransposeSquare[T any](buf []T, n int) error {
	size, err := elementCount(n, n)
	if err != nil {
		return err
	}

	if len(buf) != size {
		return fmt.Errorf("%w: buf %d, want %dx%d", ErrInvalidShape, len(buf), n, n)
	}

	transpose.Square(buf, n)

	return nil
}

func elementCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("%w: negative dimension %dx%d", ErrInvalidShape, rows, cols)
	}

	maxInt := int(^uint(0) >> 1)
	if rows != 0 && cols > maxInt/rows {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidShape, rows, cols)
	}

	return rows * cols, nil
}

// overlaps reports whether the backing arrays of a and b intersect.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}

	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size

	return aStart < bEnd && bStart < aEnd
}
