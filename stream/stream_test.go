package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chunkio/chunkio/stream"
)

// reusingIter yields views of a single internal buffer, overwriting it on
// every Next: the worst case the borrowed-item protocol has to support.
type reusingIter struct {
	items []string
	buf   []byte
}

func (it *reusingIter) Next() ([]byte, bool) {
	if len(it.items) == 0 {
		return nil, false
	}

	it.buf = append(it.buf[:0], it.items[0]...)
	it.items = it.items[1:]

	return it.buf, true
}

func TestValues(t *testing.T) {
	t.Parallel()

	it := &reusingIter{items: []string{"one", "two", "three"}}

	var got []string
	for v := range stream.Values(it) {
		got = append(got, string(v))
	}

	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestValuesEarlyExit(t *testing.T) {
	t.Parallel()

	it := &reusingIter{items: []string{"one", "two", "three"}}

	var count int
	for range stream.Values(it) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)

	// The sequence is single-use: a second range resumes, it does not
	// restart.
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "three", string(v))
}

func TestValuesAliasing(t *testing.T) {
	t.Parallel()

	// Retaining raw views across iterations observes the overwrite...
	it := &reusingIter{items: []string{"aaa", "bbb"}}

	var raw [][]byte
	for v := range stream.Values(it) {
		raw = append(raw, v)
	}

	assert.Equal(t, "bbb", string(raw[0]), "borrowed view was overwritten by the next step")

	// ...while Cloned hands out stable copies.
	it = &reusingIter{items: []string{"aaa", "bbb"}}

	var owned [][]byte
	for v := range stream.Cloned(stream.Values(it)) {
		owned = append(owned, v)
	}

	assert.Equal(t, "aaa", string(owned[0]))
	assert.Equal(t, "bbb", string(owned[1]))
}

func TestCollect(t *testing.T) {
	t.Parallel()

	it := &reusingIter{items: []string{"x", "y", "z"}}

	got := stream.Collect[[]byte](it)
	assert.Equal(t, [][]byte{[]byte("x"), []byte("y"), []byte("z")}, got)

	assert.Empty(t, stream.Collect[[]byte](it), "iterator already drained")
}

func TestFunc(t *testing.T) {
	t.Parallel()

	n := 0
	it := stream.Func[int](func() (int, bool) {
		if n == 3 {
			return 0, false
		}
		n++

		return n, true
	})

	var got []int
	for v := range stream.Values[int](it) {
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}
