package sobolgo

import "sync"

// DefaultBits is the bit width of the built-in direction-number table and
// the default for loaded tables. A generator of width W can emit 2^W points
// per stream before exhausting its index range.
const DefaultBits = 30

// Vector holds the scaled direction numbers for one Sobol dimension: W
// unsigned integers, one per bit position, each below 2^W. Direction
// numbers are injected constants; Vector never derives them from scratch.
// A Vector is immutable once constructed.
type Vector struct {
	bits uint
	v    []uint32
}

// NewVector constructs a direction vector from pre-scaled direction
// numbers. Exactly bits numbers are required and each must fit in bits
// bits.
func NewVector(scaled []uint32, bits uint) (Vector, error) {
	if bits < 1 || bits > 31 {
		return Vector{}, &ErrInvalidBitWidth{Bits: bits}
	}
	if len(scaled) != int(bits) {
		return Vector{}, &ErrBitWidthMismatch{Expected: bits, Actual: uint(len(scaled))}
	}
	v := make([]uint32, len(scaled))
	for j, x := range scaled {
		if x >= 1<<bits {
			return Vector{}, &ErrDirectionOverflow{Position: j, Value: x, Bits: bits}
		}
		v[j] = x
	}
	return Vector{bits: bits, v: v}, nil
}

// ExpandVector constructs a direction vector from the compact form used by
// published direction-number tables: the degree-s primitive polynomial's
// interior coefficients a (bit l-1 pairing with term x^(s-l)) and the s
// initial direction numbers m_1..m_s (odd, m_j < 2^j). Positions s..W-1
// follow from the standard recurrence
//
//	m_j = 2 a_1 m_(j-1) XOR 4 a_2 m_(j-2) XOR ... XOR 2^s m_(j-s) XOR m_(j-s)
//
// applied directly to the scaled numbers. The initial numbers themselves
// remain externally supplied constants.
func ExpandVector(poly uint32, initial []uint32, bits uint) (Vector, error) {
	if bits < 1 || bits > 31 {
		return Vector{}, &ErrInvalidBitWidth{Bits: bits}
	}
	s := len(initial)
	if s < 1 || s > int(bits) {
		return Vector{}, &ErrBitWidthMismatch{Expected: bits, Actual: uint(s)}
	}
	if poly >= 1<<(s-1) {
		return Vector{}, &ErrDirectionOverflow{Position: -1, Value: poly, Bits: uint(s - 1)}
	}
	v := make([]uint32, bits)
	for j, m := range initial {
		if m%2 == 0 || m >= 1<<(j+1) {
			return Vector{}, &ErrDirectionOverflow{Position: j, Value: m, Bits: uint(j + 1)}
		}
		v[j] = m << (bits - 1 - uint(j))
	}
	for j := s; j < int(bits); j++ {
		x := v[j-s]
		x ^= x >> uint(s)
		a := poly
		for l := s - 1; l >= 1; l-- {
			if a&1 == 1 {
				x ^= v[j-l]
			}
			a >>= 1
		}
		v[j] = x
	}
	return Vector{bits: bits, v: v}, nil
}

// VanDerCorput returns the direction vector of the classic first Sobol
// dimension, the van der Corput sequence in base 2 (every m_j = 1).
// Published Joe-Kuo tables leave this dimension implicit.
func VanDerCorput(bits uint) (Vector, error) {
	if bits < 1 || bits > 31 {
		return Vector{}, &ErrInvalidBitWidth{Bits: bits}
	}
	v := make([]uint32, bits)
	for j := range v {
		v[j] = 1 << (bits - 1 - uint(j))
	}
	return Vector{bits: bits, v: v}, nil
}

// Bits returns the vector's bit width.
func (v Vector) Bits() uint { return v.bits }

// Direction returns the scaled direction number at bit position j.
func (v Vector) Direction(j int) uint32 { return v.v[j] }

// ValueAt computes this dimension's raw W-bit sequence value at index i via
// the independent formula: the XOR of the direction numbers at every bit
// position set in GrayCode(i). ValueAt(0) is 0 for every vector. The result
// is defined for i < 2^W; Sequence enforces that bound for callers.
func (v Vector) ValueAt(i uint32) uint32 {
	var y uint32
	g := GrayCode(i)
	for b := 0; g != 0 && b < len(v.v); b++ {
		if g&1 == 1 {
			y ^= v.v[b]
		}
		g >>= 1
	}
	return y
}

// Table maps contiguous 0-based dimension indices to their direction
// vectors. All vectors in a table share one bit width. A Table is immutable
// and safe for concurrent use by any number of generators.
type Table struct {
	bits    uint
	vectors []Vector
}

// NewTable builds a table from per-dimension direction vectors. At least
// one vector is required and all must share the same bit width.
func NewTable(vectors []Vector) (*Table, error) {
	if len(vectors) == 0 {
		return nil, ErrNilTable
	}
	bits := vectors[0].bits
	for d, v := range vectors {
		if v.bits != bits {
			return nil, &ErrBitWidthMismatch{Dimension: d, Expected: bits, Actual: v.bits}
		}
	}
	return &Table{bits: bits, vectors: append([]Vector(nil), vectors...)}, nil
}

// Dimensions returns the number of dimensions the table supplies.
func (t *Table) Dimensions() int { return len(t.vectors) }

// Bits returns the table's shared bit width.
func (t *Table) Bits() uint { return t.bits }

// Vector returns the direction vector for dimension d.
func (t *Table) Vector(d int) Vector { return t.vectors[d] }

// MaxIndex returns the highest valid sequence index, 2^W - 1.
func (t *Table) MaxIndex() uint32 { return 1<<t.bits - 1 }

// Press et al. 2007 initial direction numbers, six dimensions at 30 bits.
var defaultRows = []struct {
	poly    uint32
	initial []uint32
}{
	{0, []uint32{1}},
	{1, []uint32{1, 1}},
	{1, []uint32{1, 3, 7}},
	{2, []uint32{1, 3, 3}},
	{1, []uint32{1, 1, 3, 13}},
	{4, []uint32{1, 1, 5, 9}},
}

var defaultTable = sync.OnceValue(func() *Table {
	vectors := make([]Vector, len(defaultRows))
	for d, row := range defaultRows {
		v, err := ExpandVector(row.poly, row.initial, DefaultBits)
		if err != nil {
			panic("sobolgo: built-in direction table: " + err.Error())
		}
		vectors[d] = v
	}
	t, err := NewTable(vectors)
	if err != nil {
		panic("sobolgo: built-in direction table: " + err.Error())
	}
	return t
})

// Default returns the built-in six-dimension, 30-bit direction-number
// table (initial numbers from Press et al., Numerical Recipes 3rd ed.).
// Use the joekuo package to load tables with more dimensions.
func Default() *Table {
	return defaultTable()
}
