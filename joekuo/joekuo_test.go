package joekuo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sobolgo"
)

// The leading rows of the published new-joe-kuo-6 file.
const sampleTable = `d       s       a       m_i
2       1       0       1
3       2       1       1 3
4       3       1       1 3 1
5       3       2       1 1 1
6       4       1       1 1 3 3
7       4       4       1 3 5 13
`

func TestLoad(t *testing.T) {
	table, err := Load(strings.NewReader(sampleTable))
	require.NoError(t, err)

	// Six rows plus the implicit van der Corput dimension.
	assert.Equal(t, 7, table.Dimensions())
	assert.Equal(t, uint(sobolgo.DefaultBits), table.Bits())

	want, err := sobolgo.VanDerCorput(sobolgo.DefaultBits)
	require.NoError(t, err)
	for j := 0; j < int(sobolgo.DefaultBits); j++ {
		assert.Equal(t, want.Direction(j), table.Vector(0).Direction(j), "position %d", j)
	}

	// Row d=3 carries poly 1, initial {1, 3}.
	row, err := sobolgo.ExpandVector(1, []uint32{1, 3}, sobolgo.DefaultBits)
	require.NoError(t, err)
	for j := 0; j < int(sobolgo.DefaultBits); j++ {
		assert.Equal(t, row.Direction(j), table.Vector(2).Direction(j), "position %d", j)
	}
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleTable))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	table, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, table.Dimensions())
}

func TestLoadBits(t *testing.T) {
	table, err := Load(strings.NewReader(sampleTable), WithBits(16))
	require.NoError(t, err)
	assert.Equal(t, uint(16), table.Bits())
	assert.Equal(t, uint32(1<<16-1), table.MaxIndex())
}

func TestLoadMaxDimensions(t *testing.T) {
	table, err := Load(strings.NewReader(sampleTable), WithMaxDimensions(3))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Dimensions())

	table, err = Load(strings.NewReader(sampleTable), WithMaxDimensions(1))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Dimensions())
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"MissingInitial", "2 1 0\n", 1},
		{"DegreeCountMismatch", "2 2 1 1\n", 1},
		{"NotANumber", "2 1 0 x\n", 1},
		{"EvenInitial", "2 1 0 2\n", 1},
		{"OutOfOrder", "2 1 0 1\n4 2 1 1 3\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			var malformed *ErrMalformedRow
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.line, malformed.Line)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader("d s a m_i\n"))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestLoadedTableGenerates(t *testing.T) {
	table, err := Load(strings.NewReader(sampleTable))
	require.NoError(t, err)

	seq, err := sobolgo.New(table, table.Dimensions())
	require.NoError(t, err)

	// Recurrence and independent formula must agree on loaded tables too.
	buf := make([]float64, table.Dimensions())
	for i := uint32(0); i < 512; i++ {
		direct, err := seq.At(i)
		require.NoError(t, err)
		require.NoError(t, seq.NextAt(buf))
		require.Equal(t, direct, buf, "index %d", i)

		for d, x := range buf {
			require.GreaterOrEqual(t, x, 0.0, "index %d dimension %d", i, d)
			require.Less(t, x, 1.0, "index %d dimension %d", i, d)
		}
	}
}
