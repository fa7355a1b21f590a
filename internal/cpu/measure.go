package cpu

import (
	"runtime"
	"time"
)

// Measurement is the result of timing a function over several iterations.
type Measurement struct {
	Iters int
	Total time.Duration
	Best  time.Duration
}

// NsPerOp returns the mean duration of one iteration in nanoseconds.
func (m Measurement) NsPerOp() float64 {
	if m.Iters == 0 {
		return 0
	}

	return float64(m.Total.Nanoseconds()) / float64(m.Iters)
}

// Measure runs fn warmup times untimed, collects garbage, then times iters
// runs individually.
func Measure(warmup, iters int, fn func()) Measurement {
	for range warmup {
		fn()
	}

	runtime.GC()

	m := Measurement{Iters: max(iters, 0)}

	for range m.Iters {
		start := ReadCycleCounter()
		fn()
		elapsed := time.Duration(CyclesToNanoseconds(CyclesSince(start)))

		m.Total += elapsed
		if m.Best == 0 || elapsed < m.Best {
			m.Best = elapsed
		}
	}

	return m
}
