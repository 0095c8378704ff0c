package sobolgo

import (
	"math/bits"
	"testing"
)

func TestGrayCode(t *testing.T) {
	tests := []struct {
		i        uint32
		expected uint32
	}{
		{0, 0b000},
		{1, 0b001},
		{2, 0b011},
		{3, 0b010},
		{4, 0b110},
		{5, 0b111},
		{6, 0b101},
		{7, 0b100},
		{255, 0b10000000},
	}

	for _, tt := range tests {
		if got := GrayCode(tt.i); got != tt.expected {
			t.Errorf("GrayCode(%d): expected %b, got %b", tt.i, tt.expected, got)
		}
	}
}

func TestGrayCodeBijection(t *testing.T) {
	// Gray codes are their own inverse under prefix-XOR; checking the
	// round trip over a large range proves injectivity without a 2^32 set.
	for i := uint32(0); i < 1<<16; i++ {
		g := GrayCode(i)
		var decoded uint32
		for g != 0 {
			decoded ^= g
			g >>= 1
		}
		if decoded != i {
			t.Fatalf("gray code of %d does not decode back, got %d", i, decoded)
		}
	}
}

func TestGrayCodeSingleBitFlip(t *testing.T) {
	for i := uint32(0); i < 1<<16; i++ {
		diff := GrayCode(i) ^ GrayCode(i+1)
		if bits.OnesCount32(diff) != 1 {
			t.Fatalf("GrayCode(%d) and GrayCode(%d) differ in %d bits", i, i+1, bits.OnesCount32(diff))
		}
	}
}

func TestGrayCodeFlipPosition(t *testing.T) {
	// The recurrence depends on the flipped bit sitting at the lowest zero
	// bit of the predecessor index.
	for i := uint32(0); i < 1<<16; i++ {
		diff := GrayCode(i) ^ GrayCode(i+1)
		if diff != 1<<lowestZeroBit(i) {
			t.Fatalf("index %d: flip at %b, lowest zero bit %d", i, diff, lowestZeroBit(i))
		}
	}
}

func TestLowestZeroBit(t *testing.T) {
	tests := []struct {
		i        uint32
		expected uint
	}{
		{0, 0},
		{1, 1},
		{2, 0},
		{3, 2},
		{5, 1},
		{7, 3},
		{1<<20 - 1, 20},
	}

	for _, tt := range tests {
		if got := lowestZeroBit(tt.i); got != tt.expected {
			t.Errorf("lowestZeroBit(%d): expected %d, got %d", tt.i, tt.expected, got)
		}
	}
}
