package transpose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInPlace4x4(t *testing.T) {
	t.Parallel()

	want := []int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}

	for _, iw := range []int{2, 4, 15, 16} {
		buf := sequence(16)
		InPlace(buf, make([]int, iw), 4, 4)
		require.Equal(t, want, buf, "workspace %d", iw)
	}
}

func TestInPlace2x3(t *testing.T) {
	t.Parallel()

	buf := []string{"a", "b", "c", "d", "e", "f"}
	InPlace(buf, make([]string, 2), 2, 3)
	require.Equal(t, []string{"a", "d", "b", "e", "c", "f"}, buf)
}

// Every shape up to 12x12 with every workspace size from 2 to rows*cols.
func TestInPlaceMatchesOutOfPlaceAllWorkspaces(t *testing.T) {
	t.Parallel()

	for rows := 1; rows <= 12; rows++ {
		for cols := 1; cols <= 12; cols++ {
			n := rows * cols
			src := sequence(n)
			want := make([]int, n)
			OutOfPlace(want, src, rows, cols)

			for iw := 2; iw <= max(2, n); iw++ {
				buf := sequence(n)
				InPlace(buf, make([]int, iw), rows, cols)
				require.Equal(t, want, buf, "%dx%d workspace %d", rows, cols, iw)
			}
		}
	}
}

func TestInPlaceShapeGrid(t *testing.T) {
	t.Parallel()

	sizes := []int{4, 5, 13, 16, 54, 67, 512, 813}
	if testing.Short() {
		sizes = sizes[:6]
	}

	for _, rows := range sizes {
		for _, cols := range sizes {
			t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
				t.Parallel()

				buf := make([]float64, rows*cols)
				for i := range buf {
					buf[i] = float64(i)
				}

				want := reference(buf, rows, cols)

				InPlace(buf, make([]float64, 4), rows, cols)
				require.Equal(t, want, buf)
			})
		}
	}
}

func TestInPlaceShapes(t *testing.T) {
	t.Parallel()

	shapes := []shape{
		{1, 1}, {1, 2}, {2, 1}, {1, 97}, {97, 1}, {1, 1000}, {1000, 1},
		{2, 2}, {3, 3}, {31, 31}, {64, 64},
		{2, 7}, {7, 2}, {10, 3}, {3, 10},
		{97, 89}, {89, 97}, {101, 7}, {7, 101},
		{64, 256}, {256, 64}, {128, 32},
	}

	workspaces := []func(n int) int{
		func(int) int { return 2 },
		func(int) int { return 3 },
		func(n int) int { return max(2, n/7) },
		func(n int) int { return max(2, n/2) },
		func(n int) int { return max(2, n) },
	}

	for _, sh := range shapes {
		for i, ws := range workspaces {
			n := sh.rows * sh.cols
			src := sequence(n)
			want := reference(src, sh.rows, sh.cols)

			iw := min(ws(n), max(n, 2))
			InPlace(src, make([]int, iw), sh.rows, sh.cols)
			require.Equal(t, want, src, "shape %v workspace #%d (%d)", sh, i, iw)
		}
	}
}

func TestInPlaceInvolution(t *testing.T) {
	t.Parallel()

	shapes := []shape{{5, 3}, {40, 9}, {9, 40}, {128, 100}, {333, 17}}

	for _, sh := range shapes {
		buf := sequence(sh.rows * sh.cols)
		work := make([]int, 8)

		InPlace(buf, work, sh.rows, sh.cols)
		InPlace(buf, work, sh.cols, sh.rows)
		require.Equal(t, sequence(sh.rows*sh.cols), buf, "shape %v", sh)
	}
}

func TestInPlaceEmpty(t *testing.T) {
	t.Parallel()

	var buf []int
	InPlace(buf, nil, 0, 5)
	InPlace(buf, nil, 5, 0)
	InPlace(buf, nil, 0, 0)
	require.Empty(t, buf)
}

// The workspace only scales the out-of-place base case; its contents on
// entry must not leak into the result.
func TestInPlaceIgnoresWorkspaceContents(t *testing.T) {
	t.Parallel()

	const rows, cols = 19, 6

	work := make([]int, 40)
	for i := range work {
		work[i] = -1
	}

	buf := sequence(rows * cols)
	want := reference(buf, rows, cols)

	InPlace(buf, work, rows, cols)
	require.Equal(t, want, buf)
}
