package sobolgo

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidStride is returned when a leap-frog stride or offset is out of
// range.
var ErrInvalidStride = errors.New("leap-frog stride must be >= 1 and offset < stride")

// Strided is a leap-frog view of a Sobol sequence: it emits only the
// indices {offset, offset+stride, offset+2*stride, ...}. K workers with
// stride K and offsets 0..K-1 partition the full sequence exactly.
//
// Like Sequence, a Strided view is not safe for concurrent use.
type Strided struct {
	seq    *Sequence
	offset uint32
	stride uint32
	pos    uint64 // points emitted so far
}

// NewStrided constructs a leap-frog view over the given table. offset must
// be smaller than stride.
func NewStrided(table *Table, dim int, offset, stride uint32, optFns ...Option) (*Strided, error) {
	if stride < 1 || offset >= stride {
		return nil, ErrInvalidStride
	}
	seq, err := New(table, dim, optFns...)
	if err != nil {
		return nil, err
	}
	return &Strided{seq: seq, offset: offset, stride: stride}, nil
}

// Dimensions returns the number of coordinates per point.
func (l *Strided) Dimensions() int { return l.seq.Dimensions() }

// Index returns the full-sequence index of the point the next call to Next
// will emit.
func (l *Strided) Index() uint64 {
	return uint64(l.offset) + l.pos*uint64(l.stride)
}

// Next returns the next point of the residue class. It fails with
// ErrIndexRange once the class is exhausted, leaving the view unchanged.
func (l *Strided) Next() ([]float64, error) {
	target := make([]float64, l.seq.Dimensions())
	if err := l.NextAt(target); err != nil {
		return nil, err
	}
	return target, nil
}

// NextAt is equivalent to Next but writes the point into target.
func (l *Strided) NextAt(target []float64) error {
	idx := l.Index()
	if idx > uint64(l.seq.max) {
		return &ErrIndexRange{Index: idx, Max: l.seq.max}
	}
	if err := l.seq.SkipTo(uint32(idx)); err != nil {
		return err
	}
	if err := l.seq.NextAt(target); err != nil {
		return err
	}
	l.pos++
	return nil
}

// Sample generates the first n points of the sequence in parallel. The
// index range is split by residue class: worker w produces the points at
// indices {w, w+workers, w+2*workers, ...}, each reached through random
// access, so the result is identical to n sequential Next calls. workers
// below 1 is treated as 1.
//
// The context is checked between points; on cancellation the partial batch
// is discarded and the context error returned.
func Sample(ctx context.Context, table *Table, dim, n, workers int, optFns ...Option) ([][]float64, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	o := applyOptions(optFns)
	if workers < 1 {
		workers = 1
	}
	if n <= 0 {
		return nil, nil
	}
	if uint64(n-1) > uint64(table.MaxIndex()) {
		return nil, &ErrIndexRange{Index: uint64(n - 1), Max: table.MaxIndex()}
	}

	points := make([][]float64, n)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			seq, err := New(table, dim)
			if err != nil {
				return err
			}
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := seq.SkipTo(uint32(i)); err != nil {
					return err
				}
				p := make([]float64, dim)
				if err := seq.NextAt(p); err != nil {
					return err
				}
				points[i] = p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.WithDimension(dim).WithWorkers(workers).Debug("sample batch generated", "points", n)

	return points, nil
}
