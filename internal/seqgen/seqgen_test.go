package seqgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunes_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42

	a, err := Runes(opts)
	require.NoError(t, err)
	b, err := Runes(opts)
	require.NoError(t, err)

	assert.Len(t, a, opts.Length)
	assert.Equal(t, a, b, "same seed must give the same sequence")
	for _, s := range a {
		assert.Contains(t, DNA, string(s))
	}
}

func TestRunes_ZeroSeedIsDefault(t *testing.T) {
	zero := DefaultOptions()
	one := DefaultOptions()
	one.Seed = int64(defaultSeed)

	a, err := Runes(zero)
	require.NoError(t, err)
	b, err := Runes(one)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunes_BadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = -1
	_, err := Runes(opts)
	assert.ErrorIs(t, err, ErrBadLength)

	opts = DefaultOptions()
	opts.Alphabet = nil
	_, err = Runes(opts)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)

	opts.Length = 0
	opts.Alphabet = []rune("A")
	out, err := Runes(opts)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMutate(t *testing.T) {
	opts := DefaultOptions()
	src, err := Runes(opts)
	require.NoError(t, err)

	same, err := Mutate(src, 0, opts)
	require.NoError(t, err)
	assert.Equal(t, src, same, "rate 0 keeps the source")

	m1, err := Mutate(src, 0.5, opts)
	require.NoError(t, err)
	m2, err := Mutate(src, 0.5, opts)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)

	_, err = Mutate(src, 1.5, opts)
	assert.ErrorIs(t, err, ErrBadRate)
	opts.Alphabet = nil
	_, err = Mutate(src, 0.1, opts)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestOptions_Streams(t *testing.T) {
	opts := Options{Seed: 7}
	draw := func(stream uint64) []uint64 {
		r := opts.source(stream)
		out := make([]uint64, 4)
		for i := range out {
			out[i] = r.Uint64()
		}

		return out
	}

	assert.Equal(t, draw(streamRunes), draw(streamRunes))
	assert.NotEqual(t, draw(streamRunes), draw(streamMutate))

	first := draw(streamRunes)[0]
	opts.Seed = 8
	assert.NotEqual(t, first, draw(streamRunes)[0])
}
