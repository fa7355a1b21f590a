package transpose

// InPlace overwrites the rows x cols matrix buf with its cols x rows
// transpose. work is scratch space; any sub-problem with at most len(work)
// elements is transposed out of place through it. A longer workspace means
// fewer swaps, never a different result.
//
// The routines below see buf as a column-major m x n matrix: a row-major
// rows x cols buffer is the column-major cols x rows matrix, and its
// transpose is the same in both views.
func InPlace[T any](buf, work []T, rows, cols int) {
	if rows*cols == 0 {
		return
	}

	if rows >= cols {
		rowTranspose(buf, work, cols, rows)
	} else {
		columnTranspose(buf, work, cols, rows)
	}
}

// viaWorkspace transposes the column-major m x n matrix a through work.
func viaWorkspace[T any](a, work []T, m, n int) {
	size := m * n
	OutOfPlace(work[:size], a[:size], n, m)
	copy(a[:size], work[:size])
}

// columnTranspose transposes the column-major m x n matrix a with m > n.
// The top q*n rows are q stacked n x n panels, the bottom r rows the
// remainder.
func columnTranspose[T any](a, work []T, m, n int) {
	if m*n <= len(work) {
		viaWorkspace(a, work, m, n)
		return
	}

	q := m / n
	r := m % n

	unshuffle(a, q*n, r, n)
	partition(a, q, n)
	rowTranspose(a[q*n*n:], work, r, n)
}

// rowTranspose transposes the column-major m x n matrix a with m <= n.
// The left q*m columns are q adjacent m x m panels, the right r columns
// the remainder.
func rowTranspose[T any](a, work []T, m, n int) {
	if m*n <= len(work) {
		viaWorkspace(a, work, m, n)
		return
	}

	q := n / m
	r := n % m

	columnTranspose(a[q*m*m:], work, m, r)
	join(a, q, m)
	shuffle(a, q*m, r, m)
}

// partition transposes a (q*n) x n panel column of q square panels.
// It unshuffles before recursing.
func partition[T any](a []T, q, n int) {
	if q == 1 {
		Square(a, n)
		return
	}

	q2 := q / 2
	q1 := q - q2

	unshuffle(a, q1*n, q2*n, n)
	partition(a, q1, n)
	partition(a[q1*n*n:], q2, n)
}

// join transposes an n x (q*n) panel row of q square panels.
// It recurses before shuffling.
func join[T any](a []T, q, n int) {
	if q == 1 {
		Square(a, n)
		return
	}

	q2 := q / 2
	q1 := q - q2

	join(a, q1, n)
	join(a[q1*n*n:], q2, n)
	shuffle(a, q1*n, q2*n, n)
}
