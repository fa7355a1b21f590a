package fft

// mixedRadix computes the length-n DFT of x[i] = src[i*stride] into the
// contiguous dst[:n] by recursive decimation in time over factors.
//
// twiddle is the table of the full transform of length N and twStep is
// N/n, so W_n^k is twiddle[k*twStep]. work must hold the largest factor.
func mixedRadix[T Complex](dst, src []T, stride, n int, factors []int, twiddle []T, twStep int, work []T) {
	if n == 1 {
		dst[0] = src[0]
		return
	}

	p := factors[0]
	m := n / p

	// p interleaved sub-sequences of length m, each into its own run of dst.
	for r := range p {
		mixedRadix(dst[r*m:], src[r*stride:], stride*p, m, factors[1:], twiddle, twStep*p, work)
	}

	// Butterfly of radix p: X[k+q*m] = sum_r W_n^(r*k) * W_p^(r*q) * Y_r[k].
	rootStep := twStep * m // W_p = W_N^(N/p)
	t := work[:p]

	for k := range m {
		for r := range p {
			t[r] = dst[r*m+k] * twiddle[r*k*twStep]
		}

		for q := range p {
			var sum T
			for r := range p {
				sum += t[r] * twiddle[((r*q)%p)*rootStep]
			}

			dst[k+q*m] = sum
		}
	}
}
