package transpose

import m "github.com/cwbudde/algo-transpose/internal/math"

// exchange turns the layout a(p) b(q) at the start of v into b(q) a(p)
// using swaps only. Each pass swaps the shorter side across the boundary
// and shrinks the problem until one side is empty.
func exchange[T any](v []T, p, q int) {
	for p > 0 && q > 0 {
		if p >= q {
			for i := range q {
				v[i], v[i+p] = v[i+p], v[i]
			}

			v = v[q:]
			p -= q
		} else {
			for i := range p {
				v[i], v[i+q] = v[i+q], v[i]
			}

			v = v[:q]
			q -= p
		}
	}
}

// unshuffle separates m interleaved (la, lb) pairs,
// a1 b1 a2 b2 ... am bm  ->  a1 a2 ... am b1 b2 ... bm,
// where every ai has length la and every bi has length lb.
func unshuffle[T any](v []T, la, lb, cnt int) {
	if cnt <= 1 {
		return
	}

	m1 := m.LargestPowerOfTwoBelow(cnt)
	unshuffle(v, la, lb, m1)
	unshuffle(v[(la+lb)*m1:], la, lb, cnt-m1)

	if la*(cnt-m1) > 0 && lb*m1 > 0 {
		exchange(v[la*m1:], lb*m1, la*(cnt-m1))
	}
}

// shuffle is the inverse of unshuffle,
// a1 a2 ... am b1 b2 ... bm  ->  a1 b1 a2 b2 ... am bm.
func shuffle[T any](v []T, la, lb, cnt int) {
	if cnt <= 1 {
		return
	}

	m1 := m.LargestPowerOfTwoBelow(cnt)

	if la*(cnt-m1) > 0 && lb*m1 > 0 {
		exchange(v[la*m1:], la*(cnt-m1), lb*m1)
	}

	shuffle(v, la, lb, m1)
	shuffle(v[(la+lb)*m1:], la, lb, cnt-m1)
}
