package transpose

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchange(t *testing.T) {
	t.Parallel()

	for p := 0; p <= 12; p++ {
		for q := 0; q <= 12; q++ {
			v := sequence(p + q)

			want := make([]int, 0, p+q)
			want = append(want, sequence(p + q)[p:]...)
			want = append(want, sequence(p)...)

			exchange(v, p, q)
			require.Equal(t, want, v, "p=%d q=%d", p, q)
		}
	}
}

func TestExchangeLeavesTail(t *testing.T) {
	t.Parallel()

	v := []int{1, 2, 3, 4, 5, 6, 7}
	exchange(v, 2, 3)
	require.Equal(t, []int{3, 4, 5, 1, 2, 6, 7}, v)
}

// interleaved builds cnt pairs (a_i, b_i) where block a_i holds la copies
// of i and block b_i holds lb copies of -(i+1).
func interleaved(la, lb, cnt int) []int {
	v := make([]int, 0, (la+lb)*cnt)
	for i := range cnt {
		for range la {
			v = append(v, i)
		}

		for range lb {
			v = append(v, -(i + 1))
		}
	}

	return v
}

func separated(la, lb, cnt int) []int {
	v := make([]int, 0, (la+lb)*cnt)
	for i := range cnt {
		for range la {
			v = append(v, i)
		}
	}

	for i := range cnt {
		for range lb {
			v = append(v, -(i + 1))
		}
	}

	return v
}

func TestUnshuffle(t *testing.T) {
	t.Parallel()

	for la := 0; la <= 4; la++ {
		for lb := 0; lb <= 4; lb++ {
			for cnt := 0; cnt <= 17; cnt++ {
				v := interleaved(la, lb, cnt)
				unshuffle(v, la, lb, cnt)
				require.Equal(t, separated(la, lb, cnt), v, "la=%d lb=%d m=%d", la, lb, cnt)
			}
		}
	}
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	for la := 0; la <= 4; la++ {
		for lb := 0; lb <= 4; lb++ {
			for cnt := 0; cnt <= 17; cnt++ {
				v := separated(la, lb, cnt)
				shuffle(v, la, lb, cnt)
				require.Equal(t, interleaved(la, lb, cnt), v, "la=%d lb=%d m=%d", la, lb, cnt)
			}
		}
	}
}

func TestShuffleUnshuffleRoundTrip(t *testing.T) {
	t.Parallel()

	for la := 0; la <= 6; la++ {
		for lb := 0; lb <= 6; lb++ {
			for cnt := 0; cnt <= 33; cnt++ {
				n := (la + lb) * cnt
				v := sequence(n)

				unshuffle(v, la, lb, cnt)
				shuffle(v, la, lb, cnt)
				require.Equal(t, sequence(n), v, "la=%d lb=%d m=%d", la, lb, cnt)

				shuffle(v, la, lb, cnt)
				unshuffle(v, la, lb, cnt)
				require.Equal(t, sequence(n), v, "la=%d lb=%d m=%d (inverse order)", la, lb, cnt)
			}
		}
	}
}

// Split points land on every power of two and its neighbours.
func TestUnshufflePowerOfTwoCounts(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 7; k++ {
		for _, cnt := range []int{1<<k - 1, 1 << k, 1<<k + 1} {
			v := interleaved(3, 2, cnt)
			unshuffle(v, 3, 2, cnt)
			require.Equal(t, separated(3, 2, cnt), v, "m=%d", cnt)
		}
	}
}
