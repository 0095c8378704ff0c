package sobolgo

import "math/bits"

// GrayCode returns the binary-reflected gray code of i, i XOR (i >> 1).
//
// The gray code is a bijection on uint32 in which consecutive integers
// differ in exactly one bit. That single-bit flip is what lets the Sobol
// recurrence update a value with one XOR per step instead of recomputing
// the full direction-number sum.
func GrayCode(i uint32) uint32 {
	return i ^ (i >> 1)
}

// lowestZeroBit returns the 0-based position of the lowest-order zero bit
// of i. This is the bit in which GrayCode(i) and GrayCode(i+1) differ.
func lowestZeroBit(i uint32) uint {
	return uint(bits.TrailingZeros32(^i))
}
