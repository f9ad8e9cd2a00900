package chunkio_test

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkio/chunkio"
)

func TestFragmentSourcePrefixes(t *testing.T) {
	t.Parallel()

	data := []byte("the quick brown fox jumps over the lazy dog")
	inner := chunkio.NewBytesSource(data)
	src := chunkio.NewFragmentSource(inner, 5, rand.New(rand.NewPCG(1, 0)))

	var out []byte

	for {
		view, err := src.Fill()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)
		assert.LessOrEqual(t, len(view), 5)

		// Every view must be a prefix of what the wrapped source holds.
		remaining, err := inner.Fill()
		require.NoError(t, err)
		assert.Equal(t, remaining[:len(view)], view)

		out = append(out, view...)
		src.Consume(len(view))
	}

	assert.Equal(t, data, out)
}

func TestFragmentSourceReproducible(t *testing.T) {
	t.Parallel()

	data := []byte("reproducibility is the whole point of the seed")

	lengths := func(seed uint64) []int {
		src := chunkio.NewFragmentSource(
			chunkio.NewBytesSource(data), 4, rand.New(rand.NewPCG(seed, 0)))

		var got []int

		for {
			view, err := src.Fill()
			if err == io.EOF {
				return got
			}

			require.NoError(t, err)

			got = append(got, len(view))
			src.Consume(len(view))
		}
	}

	assert.Equal(t, lengths(123), lengths(123))
	assert.NotEqual(t, lengths(123), lengths(456))
}

func TestFragmentSourceClipsToAvailable(t *testing.T) {
	t.Parallel()

	src := chunkio.NewFragmentSource(
		chunkio.NewBytesSource([]byte("ab")), 64, rand.New(rand.NewPCG(9, 0)))

	for {
		view, err := src.Fill()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)
		assert.LessOrEqual(t, len(view), 2)

		src.Consume(len(view))
	}
}

func TestFragmentSourceDefaults(t *testing.T) {
	t.Parallel()

	// Zero cap and nil generator fall back to usable defaults.
	src := chunkio.NewFragmentSource(chunkio.NewBytesSource([]byte("abc")), 0, nil)

	var out []byte

	for {
		view, err := src.Fill()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)
		assert.LessOrEqual(t, len(view), chunkio.DefaultMaxFragment)

		out = append(out, view...)
		src.Consume(len(view))
	}

	assert.Equal(t, []byte("abc"), out)
}
