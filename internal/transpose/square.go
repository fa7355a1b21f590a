package transpose

// Square transposes the n x n matrix buf in place by swapping (r,c) with
// (c,r) below the diagonal. The diagonal is left untouched.
func Square[T any](buf []T, n int) {
	buf = buf[:n*n]

	for c := 0; c < n-1; c++ {
		for r := c + 1; r < n; r++ {
			i := r*n + c
			j := c*n + r
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
