package sobolgo

import (
	"errors"
	"fmt"
)

// ErrTargetLength is returned by NextAt when the target slice length does
// not match the sequence dimensionality.
var ErrTargetLength = errors.New("target length does not match sequence dimensionality")

// Sequence is a multi-dimensional Sobol sequence generator. All dimensions
// advance in lock step under one shared index; the point at index i is a
// pure function of (table, dimension count, i).
//
// A Sequence owns its state exclusively and is not safe for concurrent use.
// Run one instance per goroutine, or split the index range with Strided or
// Sample.
type Sequence struct {
	dirs   [][]uint32 // per dimension, scaled direction numbers
	bits   uint
	max    uint32 // highest valid index
	fac    float64
	index  uint64 // next index to emit; max+1 once exhausted
	state  []uint32
	logger *Logger
}

// New constructs a generator of the given dimensionality from a
// direction-number table. It fails if dim is not in [1, table.Dimensions()].
// The generator starts at index 0, where every dimension's value is 0.
func New(table *Table, dim int, optFns ...Option) (*Sequence, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if dim < 1 || dim > table.Dimensions() {
		return nil, &ErrDimensionExceeded{Requested: dim, Available: table.Dimensions()}
	}

	o := applyOptions(optFns)

	dirs := make([][]uint32, dim)
	for k := 0; k < dim; k++ {
		dirs[k] = table.Vector(k).v
	}

	s := &Sequence{
		dirs:   dirs,
		bits:   table.Bits(),
		max:    table.MaxIndex(),
		fac:    1 / float64(uint64(1)<<table.Bits()),
		state:  make([]uint32, dim),
		logger: o.logger,
	}

	if o.start > 0 {
		if err := s.SkipTo(o.start); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Dimensions returns the number of coordinates per point.
func (s *Sequence) Dimensions() int { return len(s.dirs) }

// Bits returns the generator's bit width W. Valid indices are [0, 2^W - 1].
func (s *Sequence) Bits() uint { return s.bits }

// Index returns the index of the point the next call to Next will emit.
func (s *Sequence) Index() uint64 { return s.index }

// Next returns the point at the current index and advances the generator.
// The first call on a fresh generator returns the all-zero point. Once the
// index range [0, 2^W - 1] is exhausted, Next fails with ErrIndexRange and
// the generator is left unchanged.
func (s *Sequence) Next() ([]float64, error) {
	target := make([]float64, len(s.dirs))
	if err := s.NextAt(target); err != nil {
		return nil, err
	}
	return target, nil
}

// NextAt is equivalent to Next but writes the point into target, avoiding
// an allocation per point. len(target) must equal Dimensions.
func (s *Sequence) NextAt(target []float64) error {
	if len(target) != len(s.dirs) {
		return fmt.Errorf("%w: got %d, want %d", ErrTargetLength, len(target), len(s.dirs))
	}
	if s.index > uint64(s.max) {
		return &ErrIndexRange{Index: s.index, Max: s.max}
	}

	for k := range s.state {
		target[k] = float64(s.state[k]) * s.fac
	}

	// One XOR per dimension moves the state from index i to i+1: the gray
	// codes of i and i+1 differ exactly in the lowest zero bit of i. The
	// final valid index has no in-range successor, so the state stays put
	// and the index alone marks exhaustion.
	i := uint32(s.index)
	if i < s.max {
		c := lowestZeroBit(i)
		for k, dir := range s.dirs {
			s.state[k] ^= dir[c]
		}
	}
	s.index++

	return nil
}

// SkipTo repositions the generator so that the next call to Next emits the
// point at index i. Each dimension is reseeded through the independent
// formula, so no intermediate points are replayed; this is what makes
// leap-frog splitting of the index range cheap. A failed call leaves the
// generator unchanged.
func (s *Sequence) SkipTo(i uint32) error {
	if i > s.max {
		return &ErrIndexRange{Index: uint64(i), Max: s.max}
	}

	g := GrayCode(i)
	for k, dir := range s.dirs {
		var y uint32
		for b, gb := 0, g; gb != 0; b++ {
			if gb&1 == 1 {
				y ^= dir[b]
			}
			gb >>= 1
		}
		s.state[k] = y
	}
	s.index = uint64(i)

	return nil
}

// At returns the point at index i through the independent formula without
// touching the generator's position. This is O(W) per dimension versus the
// O(1) recurrence step, which is why sequential consumers should prefer
// Next.
func (s *Sequence) At(i uint32) ([]float64, error) {
	if i > s.max {
		return nil, &ErrIndexRange{Index: uint64(i), Max: s.max}
	}

	target := make([]float64, len(s.dirs))
	g := GrayCode(i)
	for k, dir := range s.dirs {
		var y uint32
		for b, gb := 0, g; gb != 0; b++ {
			if gb&1 == 1 {
				y ^= dir[b]
			}
			gb >>= 1
		}
		target[k] = float64(y) * s.fac
	}

	return target, nil
}
