// Package joekuo loads Sobol direction-number tables in the text format of
// the published Joe-Kuo files (new-joe-kuo-6.21201 and friends).
//
// The format is one header line followed by one row per dimension:
//
//	d       s       a       m_i
//	2       1       0       1
//	3       2       1       1 3
//	4       3       1       1 3 1
//
// where d is the 1-based dimension number, s the degree of the primitive
// polynomial, a its interior coefficients and m_i the s initial direction
// numbers. Dimension 1 (the van der Corput column) is implicit in the files
// and supplied by the loader. Gzip-compressed input is detected and
// decompressed transparently.
package joekuo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/sobolgo"
)

// ErrEmptyTable is returned when the input contains no dimension rows.
var ErrEmptyTable = errors.New("direction-number file contains no rows")

// ErrMalformedRow indicates a row that does not follow the d s a m_i
// format. The underlying parse error (if any) can be accessed via
// errors.Unwrap.
type ErrMalformedRow struct {
	Line  int
	cause error
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("malformed direction-number row at line %d", e.Line)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }

type options struct {
	bits    uint
	maxDims int
	logger  *sobolgo.Logger
}

// Option configures table loading.
type Option func(*options)

// WithBits sets the bit width of the loaded table. Defaults to
// sobolgo.DefaultBits.
func WithBits(bits uint) Option {
	return func(o *options) {
		o.bits = bits
	}
}

// WithMaxDimensions stops loading after n dimensions, counting the implicit
// van der Corput dimension. The published files hold tens of thousands of
// rows; loading only what the consumer needs keeps startup cheap. Zero
// (the default) loads everything.
func WithMaxDimensions(n int) Option {
	return func(o *options) {
		o.maxDims = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *sobolgo.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = sobolgo.NoopLogger()
		}
		o.logger = logger
	}
}

// Load reads a direction-number table from r. The result always starts
// with the implicit van der Corput dimension, so a file with n rows yields
// a table of n+1 dimensions (subject to WithMaxDimensions).
func Load(r io.Reader, optFns ...Option) (*sobolgo.Table, error) {
	o := options{
		bits:   sobolgo.DefaultBits,
		logger: sobolgo.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	src, err := maybeGunzip(r)
	if err != nil {
		return nil, err
	}

	first, err := sobolgo.VanDerCorput(o.bits)
	if err != nil {
		return nil, err
	}
	vectors := []sobolgo.Vector{first}

	sc := bufio.NewScanner(src)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		// The published files carry a "d s a m_i" header.
		if line == 1 && fields[0] == "d" {
			continue
		}
		if o.maxDims > 0 && len(vectors) >= o.maxDims {
			break
		}

		v, d, err := parseRow(fields, o.bits)
		if err != nil {
			return nil, &ErrMalformedRow{Line: line, cause: err}
		}
		if d != len(vectors)+1 {
			return nil, &ErrMalformedRow{
				Line:  line,
				cause: fmt.Errorf("dimension %d out of order, expected %d", d, len(vectors)+1),
			}
		}
		vectors = append(vectors, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(vectors) == 1 && o.maxDims != 1 {
		return nil, ErrEmptyTable
	}

	table, err := sobolgo.NewTable(vectors)
	if err != nil {
		return nil, err
	}

	o.logger.WithDimension(table.Dimensions()).Debug("direction table loaded", "bits", o.bits)

	return table, nil
}

// parseRow parses one "d s a m_1 .. m_s" row into a direction vector and
// its 1-based dimension number.
func parseRow(fields []string, bits uint) (sobolgo.Vector, int, error) {
	if len(fields) < 4 {
		return sobolgo.Vector{}, 0, fmt.Errorf("expected at least 4 fields, got %d", len(fields))
	}

	d, err := strconv.Atoi(fields[0])
	if err != nil {
		return sobolgo.Vector{}, 0, fmt.Errorf("dimension: %w", err)
	}
	s, err := strconv.Atoi(fields[1])
	if err != nil {
		return sobolgo.Vector{}, 0, fmt.Errorf("degree: %w", err)
	}
	a, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return sobolgo.Vector{}, 0, fmt.Errorf("polynomial: %w", err)
	}
	if len(fields) != 3+s {
		return sobolgo.Vector{}, 0, fmt.Errorf("degree %d row has %d initial numbers", s, len(fields)-3)
	}

	initial := make([]uint32, s)
	for i := 0; i < s; i++ {
		m, err := strconv.ParseUint(fields[3+i], 10, 32)
		if err != nil {
			return sobolgo.Vector{}, 0, fmt.Errorf("initial number %d: %w", i+1, err)
		}
		initial[i] = uint32(m)
	}

	v, err := sobolgo.ExpandVector(uint32(a), initial, bits)
	if err != nil {
		return sobolgo.Vector{}, 0, err
	}

	return v, d, nil
}

// maybeGunzip sniffs the gzip magic bytes and wraps r in a decompressor
// when present.
func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr, nil
	}
	return br, nil
}
