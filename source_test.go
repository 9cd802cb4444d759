package bitpos

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[W Word](src Source[W]) []W {
	var out []W
	for w, ok := src.Next(); ok; w, ok = src.Next() {
		out = append(out, w)
	}
	return out
}

func TestSliceSource(t *testing.T) {
	words := []uint16{1, 2, 3}
	src := FromSlice(words)
	assert.Equal(t, 3, src.Remaining())

	w, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, uint16(1), w)
	assert.Equal(t, 2, src.Remaining())
	assert.Equal(t, []uint16{2, 3}, src.Rest())

	assert.Equal(t, []uint16{2, 3}, drain[uint16](src))
	assert.Equal(t, 0, src.Remaining())

	_, ok = src.Next()
	assert.False(t, ok)
	assert.Equal(t, []uint16{1, 2, 3}, words, "source must not modify its slice")
}

func TestTakeSource(t *testing.T) {
	t.Run("limits unbounded source", func(t *testing.T) {
		src := Take[uint8](Repeat(uint8(7)), 3)
		assert.Equal(t, 3, src.Remaining())
		assert.Equal(t, []uint8{7, 7, 7}, drain[uint8](src))
		assert.Equal(t, 0, src.Remaining())
	})

	t.Run("short inner source", func(t *testing.T) {
		src := Take[uint8](FromSlice([]uint8{1}), 3)
		assert.Equal(t, []uint8{1}, drain[uint8](src))
		assert.Equal(t, 0, src.Remaining())
	})

	t.Run("negative count", func(t *testing.T) {
		src := Take[uint8](Repeat(uint8(1)), -2)
		assert.Equal(t, 0, src.Remaining())
		assert.Empty(t, drain[uint8](src))
	})
}

func TestSeqSource(t *testing.T) {
	src := FromSeq(slices.Values([]uint32{5, 6}))
	defer src.Stop()

	assert.Equal(t, []uint32{5, 6}, drain[uint32](src))

	_, ok := src.Next()
	assert.False(t, ok)

	src.Stop()
}

func TestFuncSource(t *testing.T) {
	n := 0
	src := FromFunc(func() (uint64, bool) {
		n++
		return uint64(n), n <= 2
	})
	w, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), w)
	_, ok = src.Next()
	assert.True(t, ok)
	_, ok = src.Next()
	assert.False(t, ok)
}

func TestSourceConsumedOnce(t *testing.T) {
	src := FromSlice([]uint8{0x01, 0x02, 0x04})
	it := NewBitmapIter[uint8](src)

	for pos := range it.All() {
		assert.Equal(t, uint64(0), pos)
		break
	}
	// The iterator pulled one word at construction and holds no more.
	assert.Equal(t, 2, src.Remaining())

	assert.Equal(t, []uint64{9, 18}, Collect(it))
	assert.Equal(t, 0, src.Remaining())
}
