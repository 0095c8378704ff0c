package sobolgo

import "testing"

func BenchmarkSequenceNextAt(b *testing.B) {
	seq, err := New(Default(), 6)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]float64, 6)
	max := uint64(Default().MaxIndex())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if seq.Index() > max {
			_ = seq.SkipTo(0)
		}
		_ = seq.NextAt(buf)
	}
}

func BenchmarkSequenceSkipTo(b *testing.B) {
	seq, err := New(Default(), 6)
	if err != nil {
		b.Fatal(err)
	}
	mask := Default().MaxIndex()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.SkipTo(uint32(i) & mask)
	}
}
