// Command benchtranspose times the out-of-place strategies, the in-place
// engine at several workspace sizes and the two two-axis transform
// strategies.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-transpose"
	"github.com/cwbudde/algo-transpose/internal/cpu"
	"github.com/cwbudde/algo-transpose/internal/report"
	"github.com/cwbudde/algo-transpose/internal/synth"
)

const (
	modeOutOfPlace = "oop"
	modeInPlace    = "inplace"
	modeFFT2D      = "fft2d"
)

type shape struct {
	rows, cols int
}

func (s shape) String() string {
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}

func main() {
	var (
		shapeList = flag.String("shapes", "128x128,256x256,512x512,1024x1024,1000x3000", "comma-separated RxC shapes")
		iters     = flag.Int("iters", 20, "benchmark iterations")
		warmup    = flag.Int("warmup", 3, "warmup iterations")
		mode      = flag.String("mode", "all", "benchmark mode: oop, inplace, fft2d, all")
		workList  = flag.String("workspace", "1,4,64", "in-place workspace sizes as divisors of rows*cols")
		seed      = flag.Int64("seed", 1, "rng seed")
		out       = flag.String("out", "", "write a report (.zst and .lz4 are compressed)")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("benchtranspose: ")

	shapes := parseShapes(*shapeList)
	if len(shapes) == 0 {
		fmt.Println("no shapes specified")
		return
	}

	divisors := parseInts(*workList)
	features := cpu.DetectFeatures()
	rnd := rand.New(rand.NewSource(*seed))

	var w *report.Writer

	if *out != "" {
		var err error

		w, err = report.Create(*out)
		if err != nil {
			log.Fatal(err)
		}

		w.SetComment(features.String())
	}

	fmt.Printf("cpu=%s iters=%d warmup=%d\n", features, *iters, *warmup)
	fmt.Printf("%12s  %8s  %12s  %10s  %14s  %14s\n", "shape", "mode", "strategy", "workspace", "ns/op", "best ns")

	for _, sh := range shapes {
		var records []report.Record

		for _, runMode := range resolveModes(*mode) {
			switch runMode {
			case modeOutOfPlace:
				records = append(records, benchOutOfPlace(sh, *iters, *warmup)...)
			case modeInPlace:
				records = append(records, benchInPlace(sh, divisors, *iters, *warmup)...)
			case modeFFT2D:
				records = append(records, benchFFT2D(rnd, sh, *iters, *warmup)...)
			}
		}

		for _, rec := range records {
			fmt.Printf("%12s  %8s  %12s  %10d  %14.1f  %14.1f\n",
				sh, rec.Mode, rec.Strategy, rec.Workspace, rec.NsPerOp, rec.BestNs)

			if w != nil {
				if err := w.Write(rec); err != nil {
					log.Fatal(err)
				}
			}
		}
	}

	if w != nil {
		if err := w.Close(); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("\nReport written to: %s\n", *out)
	}
}

func record(sh shape, mode, strategy string, workspace int, m cpu.Measurement) report.Record {
	return report.Record{
		Mode:      mode,
		Strategy:  strategy,
		Rows:      sh.rows,
		Cols:      sh.cols,
		Workspace: workspace,
		Iters:     m.Iters,
		NsPerOp:   m.NsPerOp(),
		BestNs:    float64(m.Best.Nanoseconds()),
	}
}

func benchOutOfPlace(sh shape, iters, warmup int) []report.Record {
	src := synth.Sequence[float64](sh.rows * sh.cols)
	dst := make([]float64, len(src))

	strategies := []algotranspose.Strategy{
		algotranspose.StrategyDirect,
		algotranspose.StrategyTiled,
		algotranspose.StrategyRecursive,
	}

	records := make([]report.Record, 0, len(strategies))

	for _, strategy := range strategies {
		var err error

		m := cpu.Measure(warmup, iters, func() {
			err = algotranspose.TransposeWith(strategy, dst, src, sh.rows, sh.cols)
		})
		if err != nil {
			log.Fatal(err)
		}

		records = append(records, record(sh, modeOutOfPlace, strategy.String(), 0, m))
	}

	return records
}

func benchInPlace(sh shape, divisors []int, iters, warmup int) []report.Record {
	n := sh.rows * sh.cols
	buf := synth.Sequence[float64](n)
	records := make([]report.Record, 0, len(divisors))

	for _, d := range divisors {
		work := make([]float64, max(2, n/d))

		var err error

		m := cpu.Measure(warmup, iters, func() {
			err = algotranspose.TransposeInPlace(buf, work, sh.rows, sh.cols)
		})
		if err != nil {
			log.Fatal(err)
		}

		records = append(records, record(sh, modeInPlace, "gustavson", len(work), m))
	}

	return records
}

func benchFFT2D(rnd *rand.Rand, sh shape, iters, warmup int) []report.Record {
	src := synth.RandomComplex(rnd, sh.rows*sh.cols)
	buf := make([]complex128, len(src))

	base, err := algotranspose.NewBaseline(sh.rows, sh.cols)
	if err != nil {
		log.Fatal(err)
	}

	plan, err := algotranspose.NewPlan64(sh.rows)
	if err != nil {
		log.Fatal(err)
	}

	records := make([]report.Record, 0, 3)

	m := cpu.Measure(warmup, iters, func() {
		err = base.Axis(buf, src, algotranspose.Axis0)
	})
	if err != nil {
		log.Fatal(err)
	}

	records = append(records, record(sh, modeFFT2D, "baseline", 0, m))

	for _, scratchLen := range []int{len(src), max(2, plan.ScratchLen())} {
		scratch := make([]complex128, scratchLen)

		m := cpu.Measure(warmup, iters, func() {
			copy(buf, src)
			err = algotranspose.AxisTransform[complex128](buf, scratch, sh.rows, sh.cols, plan, algotranspose.Axis0)
		})
		if err != nil {
			log.Fatal(err)
		}

		name := "transpose"
		if scratchLen < len(src) {
			name = "transpose-ip"
		}

		records = append(records, record(sh, modeFFT2D, name, scratchLen, m))
	}

	return records
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeOutOfPlace, modeInPlace, modeFFT2D}
	case modeOutOfPlace, modeInPlace, modeFFT2D:
		return []string{mode}
	default:
		return []string{modeOutOfPlace}
	}
}

func parseShapes(list string) []shape {
	parts := strings.Split(list, ",")

	out := make([]shape, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		r, c, ok := strings.Cut(part, "x")
		if !ok {
			continue
		}

		rows, errRows := strconv.Atoi(r)
		cols, errCols := strconv.Atoi(c)

		if errRows != nil || errCols != nil || rows <= 0 || cols <= 0 {
			continue
		}

		out = append(out, shape{rows: rows, cols: cols})
	}

	return out
}

func parseInts(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
