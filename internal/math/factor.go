package math

// Factorize splits n into the radices used by the mixed-radix kernel.
// Factors of 4 come first, then 2, then odd primes in increasing order.
// The product of the returned factors is n. Returns nil for n < 2.
func Factorize(n int) []int {
	if n < 2 {
		return nil
	}

	var factors []int

	for n%4 == 0 {
		factors = append(factors, 4)
		n /= 4
	}

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for p := 3; p*p <= n; p += 2 {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// MaxFactor returns the largest element of factors, or 1 if factors is empty.
func MaxFactor(factors []int) int {
	largest := 1
	for _, f := range factors {
		largest = max(largest, f)
	}

	return largest
}
