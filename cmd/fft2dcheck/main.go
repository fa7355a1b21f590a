// Command fft2dcheck cross-validates the transpose-based two-axis transform
// against the gonum baseline on the ramp input x + xi.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/algo-transpose"
	"github.com/cwbudde/algo-transpose/internal/synth"
)

func main() {
	var (
		n       = flag.Int("n", 28, "matrix edge used when -rows or -cols is unset")
		rows    = flag.Int("rows", 0, "matrix rows (default n)")
		cols    = flag.Int("cols", 0, "matrix columns (default n)")
		tol     = flag.Float64("tol", 1e-6, "per-component tolerance")
		inPlace = flag.Bool("inplace", false, "use the in-place transpose path")
		axis    = flag.String("axis", "0", "axis to transform: 0, 1 or both")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fft2dcheck: ")

	if *rows == 0 {
		*rows = *n
	}

	if *cols == 0 {
		*cols = *n
	}

	axes, err := parseAxes(*axis)
	if err != nil {
		log.Fatal(err)
	}

	for _, ax := range axes {
		worst, err := check(*rows, *cols, ax, *inPlace)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%dx%d %s inplace=%v max diff %.3g\n", *rows, *cols, ax, *inPlace, worst)

		if worst > *tol {
			fmt.Printf("mismatch: %.3g exceeds tolerance %.3g\n", worst, *tol)
			os.Exit(1)
		}
	}

	fmt.Println("Test successful")
}

func parseAxes(s string) ([]algotranspose.Axis, error) {
	switch s {
	case "0":
		return []algotranspose.Axis{algotranspose.Axis0}, nil
	case "1":
		return []algotranspose.Axis{algotranspose.Axis1}, nil
	case "both":
		return []algotranspose.Axis{algotranspose.Axis0, algotranspose.Axis1}, nil
	default:
		return nil, fmt.Errorf("unknown axis %q", s)
	}
}

// check runs both strategies on the ramp and returns the largest
// per-component difference.
func check(rows, cols int, axis algotranspose.Axis, inPlace bool) (float64, error) {
	base, err := algotranspose.NewBaseline(rows, cols)
	if err != nil {
		return 0, err
	}

	src := synth.ComplexRamp(rows * cols)

	want := make([]complex128, len(src))
	if err := base.Axis(want, src, axis); err != nil {
		return 0, err
	}

	length := cols
	if axis == algotranspose.Axis0 {
		length = rows
	}

	plan, err := algotranspose.NewPlan64(length)
	if err != nil {
		return 0, err
	}

	scratchLen := rows * cols
	if inPlace {
		scratchLen = max(2, plan.ScratchLen())
	}

	got := append([]complex128(nil), src...)
	scratch := make([]complex128, scratchLen)

	if err := algotranspose.AxisTransform[complex128](got, scratch, rows, cols, plan, axis); err != nil {
		return 0, err
	}

	var worst float64
	for i := range want {
		worst = max(worst,
			math.Abs(real(got[i])-real(want[i])),
			math.Abs(imag(got[i])-imag(want[i])))
	}

	return worst, nil
}
