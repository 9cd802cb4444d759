package testutil

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapDensity(t *testing.T) {
	rng := NewRNG(4711)

	assert.Equal(t, make([]uint64, 16), rng.Bitmap64(16, 0))

	full := Bitmap[uint8](rng, 4, 100)
	assert.Equal(t, []uint8{0xff, 0xff, 0xff, 0xff}, full)

	words := rng.Bitmap64(1000, 5)
	ones := 0
	for _, w := range words {
		ones += bits.OnesCount64(w)
	}
	ratio := float64(ones) / float64(len(words)*64)
	assert.InDelta(t, 0.05, ratio, 0.01)
}

func TestBitmapDeterministic(t *testing.T) {
	a := NewRNG(1).Bitmap64(32, 10)
	b := NewRNG(1).Bitmap64(32, 10)
	assert.Equal(t, a, b)

	rng := NewRNG(1)
	first := rng.Bitmap64(8, 50)
	rng.Reset()
	assert.Equal(t, first, rng.Bitmap64(8, 50))
	assert.Equal(t, int64(1), rng.Seed())
}

func TestDirtyBitmap(t *testing.T) {
	rng := NewRNG(4711)
	words := rng.DirtyBitmap(8*1000, 8, 0.1)
	assert.Len(t, words, 8000)

	dirty := 0
	for g := 0; g < len(words); g += 8 {
		for _, w := range words[g : g+8] {
			if w != 0 {
				dirty++
				break
			}
		}
	}
	assert.Greater(t, dirty, 50)
	assert.Less(t, dirty, 150)
}

func TestReferencePositions(t *testing.T) {
	assert.Empty(t, ReferencePositions([]uint8{}))
	assert.Equal(t, []uint64{1, 4, 5, 6, 7, 11, 16}, ReferencePositions([]uint8{0b1111_0010, 0b1000, 1}))
	assert.Equal(t, []uint64{63, 64}, ReferencePositions([]uint64{1 << 63, 1}))
}
