package algotranspose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-transpose/internal/synth"
)

func reference(src []int, rows, cols int) []int {
	out := make([]int, len(src))
	for r := range rows {
		for c := range cols {
			out[c*rows+r] = src[r*cols+c]
		}
	}

	return out
}

func TestTranspose4x4(t *testing.T) {
	t.Parallel()

	src := synth.Sequence[int](16)
	dst := make([]int, 16)

	require.NoError(t, Transpose(dst, src, 4, 4))
	require.Equal(t, []int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}, dst)
}

func TestTransposeStrategiesAgree(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {1, 300}, {300, 1}, {15, 17}, {16, 16}, {17, 15}, {100, 37}, {512, 513}}
	strategies := []Strategy{StrategyAuto, StrategyDirect, StrategyTiled, StrategyRecursive}

	for _, shape := range shapes {
		rows, cols := shape[0], shape[1]
		src := synth.Sequence[int](rows * cols)
		want := reference(src, rows, cols)

		for _, strategy := range strategies {
			t.Run(fmt.Sprintf("%dx%d/%s", rows, cols, strategy), func(t *testing.T) {
				t.Parallel()

				dst := make([]int, rows*cols)
				require.NoError(t, TransposeWith(strategy, dst, src, rows, cols))
				require.Equal(t, want, dst)
			})
		}
	}
}

func TestTransposeErrors(t *testing.T) {
	t.Parallel()

	buf := make([]int, 12)

	require.ErrorIs(t, Transpose(make([]int, 12), make([]int, 11), 3, 4), ErrInvalidShape)
	require.ErrorIs(t, Transpose(make([]int, 13), make([]int, 12), 3, 4), ErrInvalidShape)
	require.ErrorIs(t, Transpose(buf, buf, -3, -4), ErrInvalidShape)
	require.ErrorIs(t, Transpose(buf, buf, int(^uint(0)>>1), 2), ErrInvalidShape)
	require.ErrorIs(t, Transpose(buf, buf, 3, 4), ErrAliasedBuffers)
	require.ErrorIs(t, Transpose(buf[:6], buf[3:9], 2, 3), ErrAliasedBuffers)
	require.NoError(t, Transpose(buf[:6], buf[6:], 2, 3))
	require.NoError(t, Transpose[int](nil, nil, 0, 5))
}

func TestTransposeInPlace(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{2, 3}, {3, 2}, {4, 4}, {1, 9}, {9, 1}, {7, 13}, {28, 28}, {64, 48}} {
		rows, cols := shape[0], shape[1]
		n := rows * cols
		want := reference(synth.Sequence[int](n), rows, cols)

		for _, iw := range []int{2, 3, n / 4, n / 2, n, n + 10} {
			if iw < 2 {
				continue
			}

			buf := synth.Sequence[int](n)
			work := make([]int, iw)

			require.NoError(t, TransposeInPlace(buf, work, rows, cols), "%dx%d iw=%d", rows, cols, iw)
			require.Equal(t, want, buf, "%dx%d iw=%d", rows, cols, iw)
		}
	}
}

func TestTransposeInPlaceErrors(t *testing.T) {
	t.Parallel()

	buf := make([]int, 12)

	require.ErrorIs(t, TransposeInPlace(buf, make([]int, 4), 3, 5), ErrInvalidShape)
	require.ErrorIs(t, TransposeInPlace(buf, make([]int, 1), 3, 4), ErrWorkspaceTooSmall)
	require.ErrorIs(t, TransposeInPlace(buf, nil, 3, 4), ErrWorkspaceTooSmall)
	require.NoError(t, TransposeInPlace(buf[:6], buf[6:], 2, 3))
	require.ErrorIs(t, TransposeInPlace(buf[:6], buf[4:], 2, 3), ErrAliasedBuffers)
	require.NoError(t, TransposeInPlace[int](nil, nil, 0, 0))
	require.NoError(t, TransposeInPlace([]int{7}, []int{0}, 1, 1))
}

func TestTransposeSquare(t *testing.T) {
	t.Parallel()

	buf := synth.Sequence[int](9)
	require.NoError(t, TransposeSquare(buf, 3))
	require.Equal(t, []int{0, 3, 6, 1, 4, 7, 2, 5, 8}, buf)

	require.ErrorIs(t, TransposeSquare(buf, 4), ErrInvalidShape)
	require.ErrorIs(t, TransposeSquare(buf, -3), ErrInvalidShape)
}

func TestSelectStrategy(t *testing.T) {
	t.Parallel()

	require.Equal(t, StrategyDirect, SelectStrategy(16, 16))
	require.Equal(t, StrategyTiled, SelectStrategy(1, 257))
	require.Equal(t, StrategyTiled, SelectStrategy(512, 512))
	require.Equal(t, StrategyRecursive, SelectStrategy(512, 513))
	require.Equal(t, "recursive", StrategyRecursive.String())
}

func TestTransposeInvolutionComplex(t *testing.T) {
	t.Parallel()

	const rows, cols = 28, 35

	src := synth.ComplexRamp(rows * cols)
	once := make([]complex128, len(src))
	twice := make([]complex128, len(src))

	require.NoError(t, Transpose(once, src, rows, cols))
	require.NoError(t, Transpose(twice, once, cols, rows))
	require.Equal(t, src, twice)
}
