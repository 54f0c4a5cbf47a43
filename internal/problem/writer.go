package problem

import (
	"bufio"
	"io"
	"strconv"
)

// Writer emits the batch format.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter returns a buffered Writer; call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the "k n" line.
func (w *Writer) WriteHeader(h Header) error {
	w.buf = strconv.AppendInt(w.buf[:0], int64(h.Dims), 10)
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendInt(w.buf, int64(h.Points), 10)
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// WriteRow writes one point or query line.
func (w *Writer) WriteRow(row []float64) error {
	w.buf = w.buf[:0]
	for j, v := range row {
		if j > 0 {
			w.buf = append(w.buf, ' ')
		}
		w.buf = strconv.AppendFloat(w.buf, v, 'g', -1, 64)
	}
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

// Write writes p in the batch format.
func Write(out io.Writer, p *Problem) error {
	w := NewWriter(out)
	if err := w.WriteHeader(Header{Dims: p.Dims, Points: len(p.Points)}); err != nil {
		return err
	}
	for _, row := range p.Points {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	for _, row := range p.Queries {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}
