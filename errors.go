package sobolgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable is returned when a Sequence is constructed without a table.
	ErrNilTable = errors.New("direction-number table must not be nil")
)

// ErrDimensionExceeded indicates that more dimensions were requested than
// the direction-number table supplies.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionExceeded struct {
	Requested int
	Available int
	cause     error
}

func (e *ErrDimensionExceeded) Error() string {
	return fmt.Sprintf("dimension exceeded: requested %d, table has %d", e.Requested, e.Available)
}

func (e *ErrDimensionExceeded) Unwrap() error { return e.cause }

// ErrInvalidBitWidth indicates a bit width outside the supported range [1,31].
type ErrInvalidBitWidth struct {
	Bits uint
}

func (e *ErrInvalidBitWidth) Error() string {
	return fmt.Sprintf("invalid bit width: %d (must be in [1,31])", e.Bits)
}

// ErrBitWidthMismatch indicates a direction vector whose bit width does not
// match the table it is being added to.
type ErrBitWidthMismatch struct {
	Dimension int
	Expected  uint
	Actual    uint
}

func (e *ErrBitWidthMismatch) Error() string {
	return fmt.Sprintf("bit width mismatch in dimension %d: table uses %d bits, vector uses %d",
		e.Dimension, e.Expected, e.Actual)
}

// ErrDirectionOverflow indicates a direction number that does not fit in the
// configured bit width.
type ErrDirectionOverflow struct {
	Dimension int
	Position  int
	Value     uint32
	Bits      uint
}

func (e *ErrDirectionOverflow) Error() string {
	return fmt.Sprintf("direction number overflow in dimension %d position %d: %#x exceeds %d bits",
		e.Dimension, e.Position, e.Value, e.Bits)
}

// ErrIndexRange indicates a sequence index beyond the 2^W - 1 limit of the
// generator's bit width. The failed call leaves the generator unchanged.
type ErrIndexRange struct {
	Index uint64
	Max   uint32
}

func (e *ErrIndexRange) Error() string {
	return fmt.Sprintf("sequence index %d out of range: generator is limited to [0, %d]", e.Index, e.Max)
}
