package cpu

import "time"

// epoch anchors the counter; time.Since reads the monotonic clock.
var epoch = time.Now()

// ReadCycleCounter returns a monotonic tick count for micro-benchmarking.
// Ticks are nanoseconds since package initialization.
func ReadCycleCounter() int64 {
	return time.Since(epoch).Nanoseconds()
}

// CyclesSince returns the number of ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts a tick count to nanoseconds.
func CyclesToNanoseconds(cycles int64) int64 {
	return cycles
}
