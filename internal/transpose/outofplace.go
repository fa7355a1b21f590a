package transpose

const (
	// blockSize is the edge of a tile in the tiled and recursive strategies.
	blockSize = 16

	// simpleLimit is the largest element count handled by Direct.
	simpleLimit = 16 * 16

	// tileLimit is the largest element count handled by Tiled.
	tileLimit = 512 * 512

	// recursionLimit bounds the sub-matrix edges at which Recursive stops
	// splitting and tiles.
	recursionLimit = 128
)

// OutOfPlace writes the transpose of the rows x cols matrix src into dst,
// which is then a cols x rows matrix. src and dst must both hold rows*cols
// elements and must not overlap.
func OutOfPlace[T any](dst, src []T, rows, cols int) {
	With(Select(rows, cols), dst, src, rows, cols)
}

// With runs an explicit strategy. StrategyAuto behaves like OutOfPlace.
func With[T any](strategy Strategy, dst, src []T, rows, cols int) {
	switch strategy {
	case StrategyDirect:
		Direct(dst, src, rows, cols)
	case StrategyTiled:
		Tiled(dst, src, rows, cols)
	case StrategyRecursive:
		Recursive(dst, src, rows, cols)
	default:
		OutOfPlace(dst, src, rows, cols)
	}
}

// Direct copies element by element: dst[r+c*rows] = src[c+r*cols].
func Direct[T any](dst, src []T, rows, cols int) {
	n := rows * cols
	src = src[:n]
	dst = dst[:n]

	for r := range rows {
		row := src[r*cols : (r+1)*cols]
		for c, v := range row {
			dst[r+c*rows] = v
		}
	}
}

// Tiled splits the matrix into blockSize x blockSize tiles and copies one
// tile at a time. Column blocks form the outer loop, row blocks the inner.
// The partial column strip, the partial row strip and the corner follow.
func Tiled[T any](dst, src []T, rows, cols int) {
	n := rows * cols
	tileRegion(dst[:n], src[:n], rows, cols, 0, 0, rows, cols)
}

// Recursive bisects the larger dimension (rows on ties) until the
// sub-matrix has at most recursionLimit rows and fewer than recursionLimit
// columns, then tiles it. Offsets stay absolute in the original buffers.
func Recursive[T any](dst, src []T, rows, cols int) {
	n := rows * cols
	recurse(dst[:n], src[:n], rows, cols, 0, 0, rows, cols)
}

func recurse[T any](dst, src []T, rows, cols, firstRow, firstCol, numRows, numCols int) {
	switch {
	case numRows <= recursionLimit && numCols < recursionLimit:
		tileRegion(dst, src, rows, cols, firstRow, firstCol, numRows, numCols)
	case numRows >= numCols:
		half := numRows / 2
		recurse(dst, src, rows, cols, firstRow, firstCol, half, numCols)
		recurse(dst, src, rows, cols, firstRow+half, firstCol, numRows-half, numCols)
	default:
		half := numCols / 2
		recurse(dst, src, rows, cols, firstRow, firstCol, numRows, half)
		recurse(dst, src, rows, cols, firstRow, firstCol+half, numRows, numCols-half)
	}
}

// tileRegion transposes the numRows x numCols window starting at
// (firstRow, firstCol) of a rows x cols matrix, tile by tile.
func tileRegion[T any](dst, src []T, rows, cols, firstRow, firstCol, numRows, numCols int) {
	blockRows := numRows / blockSize
	blockCols := numCols / blockSize
	remainRows := numRows - blockRows*blockSize
	remainCols := numCols - blockCols*blockSize

	for bc := range blockCols {
		for br := range blockRows {
			tile(dst, src, rows, cols,
				firstRow+br*blockSize, firstCol+bc*blockSize, blockSize, blockSize)
		}
	}

	if remainCols > 0 {
		for br := range blockRows {
			tile(dst, src, rows, cols,
				firstRow+br*blockSize, firstCol+numCols-remainCols, blockSize, remainCols)
		}
	}

	if remainRows > 0 {
		for bc := range blockCols {
			tile(dst, src, rows, cols,
				firstRow+numRows-remainRows, firstCol+bc*blockSize, remainRows, blockSize)
		}
	}

	if remainRows > 0 && remainCols > 0 {
		tile(dst, src, rows, cols,
			firstRow+numRows-remainRows, firstCol+numCols-remainCols, remainRows, remainCols)
	}
}

// tile copies one tileRows x tileCols block. Indices stay inside
// [0, rows*cols) by construction of the callers' loop bounds; the slices
// keep their bounds checks.
func tile[T any](dst, src []T, rows, cols, firstRow, firstCol, tileRows, tileCols int) {
	for tc := range tileCols {
		c := firstCol + tc
		for tr := range tileRows {
			r := firstRow + tr
			dst[r+c*rows] = src[c+r*cols]
		}
	}
}
