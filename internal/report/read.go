package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ReadAll decodes every record from r. Comment lines and the header are
// skipped.
func ReadAll(r io.Reader, codec Codec) ([]Record, error) {
	var src io.Reader = r

	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("report: zstd: %w", err)
		}
		defer dec.Close()

		src = dec
	case CodecLZ4:
		src = lz4.NewReader(r)
	}

	var out []Record

	sc := bufio.NewScanner(src)
	header := true

	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if header {
			header = false
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, sc.Err()
}

func parseRecord(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) != len(columns) {
		return Record{}, fmt.Errorf("report: %d fields, want %d", len(f), len(columns))
	}

	var (
		rec  = Record{Mode: f[0], Strategy: f[1]}
		ints = []*int{&rec.Rows, &rec.Cols, &rec.Workspace, &rec.Iters}
		err  error
	)

	for i, dst := range ints {
		*dst, err = strconv.Atoi(f[2+i])
		if err != nil {
			return Record{}, fmt.Errorf("report: %s: %w", columns[2+i], err)
		}
	}

	rec.NsPerOp, err = strconv.ParseFloat(f[6], 64)
	if err != nil {
		return Record{}, fmt.Errorf("report: ns_op: %w", err)
	}

	rec.BestNs, err = strconv.ParseFloat(f[7], 64)
	if err != nil {
		return Record{}, fmt.Errorf("report: best_ns: %w", err)
	}

	return rec, nil
}
