package transpose

// Strategy selects the traversal order of an out-of-place transpose.
type Strategy uint8

const (
	StrategyAuto Strategy = iota
	StrategyDirect
	StrategyTiled
	StrategyRecursive
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDirect:
		return "direct"
	case StrategyTiled:
		return "tiled"
	case StrategyRecursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// Select returns the strategy OutOfPlace uses for a rows x cols matrix.
func Select(rows, cols int) Strategy {
	switch n := rows * cols; {
	case n <= simpleLimit:
		return StrategyDirect
	case n <= tileLimit:
		return StrategyTiled
	default:
		return StrategyRecursive
	}
}
