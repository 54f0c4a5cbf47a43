// Package problem reads and writes the batch input of the dominance counter
// and generates random instances of it.
//
// The format is whitespace separated:
//
//	k n
//	x11 x12 ... x1k      (n point rows)
//	...
//	q11 q12 ... q1k      (query rows, until end of input)
package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// MinDims is the smallest dimensionality the format accepts.
const MinDims = 2

// preallocValues caps how many coordinates are allocated ahead of parsing
// them, so a header claiming more data than the input holds costs at most one
// chunk before the truncated row is reported.
const preallocValues = 1 << 20

// ErrFormat is wrapped by every parse error.
var ErrFormat = errors.New("problem: malformed input")

// Header is the first line of the input.
type Header struct {
	Dims   int
	Points int
}

// Problem is a fully read input.
type Problem struct {
	Dims    int
	Points  [][]float64
	Queries [][]float64
}

// Reader parses the format token by token. Queries can be consumed one at a
// time, so a long query stream is never held in memory.
type Reader struct {
	sc   *bufio.Scanner
	tok  int
	dims int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// next returns the next token, or io.EOF at the end of input.
func (r *Reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.tok++
	return r.sc.Text(), nil
}

func (r *Reader) nextInt(what string) (int, error) {
	s, err := r.next()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: missing %s", ErrFormat, what)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %s %q is not an integer", ErrFormat, r.tok, what, s)
	}
	return v, nil
}

// ReadHeader reads "k n" and validates it.
func (r *Reader) ReadHeader() (Header, error) {
	dims, err := r.nextInt("dimension")
	if err != nil {
		return Header{}, err
	}
	n, err := r.nextInt("point count")
	if err != nil {
		return Header{}, err
	}
	if dims < MinDims {
		return Header{}, fmt.Errorf("%w: dimension must be >= %d, got %d", ErrFormat, MinDims, dims)
	}
	if n < 1 {
		return Header{}, fmt.Errorf("%w: point count must be >= 1, got %d", ErrFormat, n)
	}
	if n > math.MaxInt/dims {
		return Header{}, fmt.Errorf("%w: point count %d is too large for dimension %d", ErrFormat, n, dims)
	}
	r.dims = dims
	return Header{Dims: dims, Points: n}, nil
}

// ReadPoints reads the h.Points point rows that follow the header. Storage
// is allocated in chunks as rows are parsed, never all at once from the
// header.
func (r *Reader) ReadPoints(h Header) ([][]float64, error) {
	perChunk := max(preallocValues/h.Dims, 1)
	points := make([][]float64, 0, min(h.Points, perChunk))
	var data []float64
	for i := 0; i < h.Points; i++ {
		if len(data) < h.Dims && h.Dims <= preallocValues {
			data = make([]float64, min(h.Points-i, perChunk)*h.Dims)
		}
		var row []float64
		if len(data) >= h.Dims {
			row = data[:0:h.Dims]
			data = data[h.Dims:]
		}
		row, err := r.appendRow(row, h.Dims, true)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, row)
	}
	return points, nil
}

// ReadQuery reads the next query into dst, which is reused when it has room
// for one. It returns io.EOF when the input ends cleanly before a query.
func (r *Reader) ReadQuery(dst []float64) ([]float64, error) {
	if r.dims == 0 {
		return nil, errors.New("problem: ReadQuery before ReadHeader")
	}
	if cap(dst) < r.dims && r.dims <= preallocValues {
		dst = make([]float64, 0, r.dims)
	}
	return r.appendRow(dst[:0], r.dims, false)
}

// appendRow appends the next dims numbers to row. A clean EOF before the
// first number is returned as io.EOF unless required is set.
func (r *Reader) appendRow(row []float64, dims int, required bool) ([]float64, error) {
	for j := 0; j < dims; j++ {
		s, err := r.next()
		if err == io.EOF {
			if j == 0 && !required {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("%w: truncated row: got %d of %d coordinates", ErrFormat, j, dims)
		}
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %q is not a number", ErrFormat, r.tok, s)
		}
		row = append(row, v)
	}
	return row, nil
}

// Read reads a whole problem, queries included.
func Read(in io.Reader) (*Problem, error) {
	r := NewReader(in)
	h, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}
	points, err := r.ReadPoints(h)
	if err != nil {
		return nil, err
	}
	p := &Problem{Dims: h.Dims, Points: points}
	for {
		q, err := r.ReadQuery(nil)
		if err == io.EOF {
			return p, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", len(p.Queries), err)
		}
		p.Queries = append(p.Queries, q)
	}
}
