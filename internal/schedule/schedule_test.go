package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{
		0: false, 1: true, 2: true, 3: false, 4: true,
		5: false, 8: true, 15: false, 16: true, 1024: true,
	}
	for n, want := range cases {
		assert.Equalf(t, want, IsPowerOfTwo(n), "n=%d", n)
	}
}

func TestGenerateRejectsNonPowerOfTwo(t *testing.T) {
	_, err := Generate(6)
	require.Error(t, err)
}

func TestGenerateTrivialSizes(t *testing.T) {
	pairs, err := Generate(1)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestGenerateN4TerminatesAtOffsetOne(t *testing.T) {
	pairs, err := Generate(4)
	require.NoError(t, err)
	require.NotEmpty(t, pairs)

	for _, p := range pairs {
		assert.GreaterOrEqual(t, p.Size, 1)
		assert.LessOrEqual(t, p.AStart+p.Size, 4)
		assert.LessOrEqual(t, p.BStart+p.Size, 4)
	}
	last := pairs[len(pairs)-1]
	assert.Equal(t, 1, last.Size, "schedule must terminate at offset=1")
}

func TestGenerateEveryPairIsDisjoint(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32} {
		pairs, err := Generate(n)
		require.NoError(t, err)
		for _, p := range pairs {
			aEnd, bEnd := p.AStart+p.Size, p.BStart+p.Size
			disjoint := aEnd <= p.BStart || bEnd <= p.AStart
			assert.Truef(t, disjoint, "n=%d pair %+v overlaps", n, p)
		}
	}
}

func TestPadAndStripRoundTrip(t *testing.T) {
	values := []uint32{5, 3, 9}
	sentinel := uint32(1 << 30)

	padded, origLen := PadToPowerOfTwo(values, sentinel)
	assert.Equal(t, 4, len(padded))
	assert.Equal(t, 3, origLen)
	assert.Equal(t, sentinel, padded[3])

	stripped := Strip(padded, origLen)
	assert.Equal(t, values, stripped)
}

func TestPadAlreadyPowerOfTwo(t *testing.T) {
	values := []uint32{1, 2, 3, 4}
	padded, origLen := PadToPowerOfTwo(values, 999)
	assert.Equal(t, values, padded)
	assert.Equal(t, 4, origLen)
}
