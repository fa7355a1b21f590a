package algotranspose

import "github.com/cwbudde/algo-transpose/internal/fftypes"

// Complex is a type constraint for complex number types supported by the FFT.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the matching real component types.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
