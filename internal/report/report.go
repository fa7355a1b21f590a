// Package report writes benchmark results as tab-separated text, optionally
// compressed with zstd or lz4 depending on the file extension.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression applied to a report stream.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecZstd
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CodecForPath picks the codec from the file extension: ".zst" for zstd,
// ".lz4" for lz4, anything else uncompressed.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

var errClosed = errors.New("report: writer closed")

// Record is one timing row.
type Record struct {
	Mode      string
	Strategy  string
	Rows      int
	Cols      int
	Workspace int
	Iters     int
	NsPerOp   float64
	BestNs    float64
}

var columns = []string{"mode", "strategy", "rows", "cols", "workspace", "iters", "ns_op", "best_ns"}

func (r Record) fields() []string {
	return []string{
		r.Mode,
		r.Strategy,
		strconv.Itoa(r.Rows),
		strconv.Itoa(r.Cols),
		strconv.Itoa(r.Workspace),
		strconv.Itoa(r.Iters),
		strconv.FormatFloat(r.NsPerOp, 'f', 1, 64),
		strconv.FormatFloat(r.BestNs, 'f', 1, 64),
	}
}

// Writer streams records. The header line is written before the first
// record.
type Writer struct {
	buf     *bufio.Writer
	enc     io.WriteCloser
	file    io.Closer
	comment string
	started bool
	closed  bool
}

// NewWriter wraps w with the given codec. Closing the returned Writer
// flushes the codec but does not close w.
func NewWriter(w io.Writer, codec Codec) (*Writer, error) {
	rw := &Writer{}

	switch codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("report: zstd: %w", err)
		}

		rw.enc = enc
		rw.buf = bufio.NewWriter(enc)
	case CodecLZ4:
		enc := lz4.NewWriter(w)

		err := enc.Apply(lz4.CompressionLevelOption(lz4.Fast))
		if err != nil {
			return nil, fmt.Errorf("report: lz4: %w", err)
		}

		rw.enc = enc
		rw.buf = bufio.NewWriter(enc)
	default:
		rw.buf = bufio.NewWriter(w)
	}

	return rw, nil
}

// Create opens path for writing and picks the codec from its extension.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := NewWriter(f, CodecForPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w.file = f

	return w, nil
}

// SetComment sets a line written as "# ..." ahead of the header, typically
// the detected CPU features.
func (w *Writer) SetComment(comment string) {
	w.comment = comment
}

// Write appends one record.
func (w *Writer) Write(rec Record) error {
	if w.closed {
		return errClosed
	}

	if !w.started {
		w.started = true

		if w.comment != "" {
			if _, err := fmt.Fprintf(w.buf, "# %s\n", w.comment); err != nil {
				return err
			}
		}

		if _, err := w.buf.WriteString(strings.Join(columns, "\t") + "\n"); err != nil {
			return err
		}
	}

	_, err := w.buf.WriteString(strings.Join(rec.fields(), "\t") + "\n")

	return err
}

// Close flushes buffered rows, finishes the compressed frame and closes the
// underlying file when the Writer owns it.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	err := w.buf.Flush()

	if w.enc != nil {
		err = errors.Join(err, w.enc.Close())
	}

	if w.file != nil {
		err = errors.Join(err, w.file.Close())
	}

	return err
}
