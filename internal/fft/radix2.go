package fft

// ditRadix2 is the iterative radix-2 decimation-in-time transform.
// len(src) must be a power of two and bitrev its bit-reversal permutation.
func ditRadix2[T Complex](dst, src, twiddle []T, bitrev []int) {
	n := len(bitrev)
	dst = dst[:n]
	src = src[:n]

	for i, j := range bitrev {
		dst[i] = src[j]
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				w := twiddle[k*step]
				a := dst[start+k]
				b := dst[start+k+half] * w
				dst[start+k] = a + b
				dst[start+k+half] = a - b
			}
		}
	}
}
