package simd

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name  string
		words []uint64
		want  bool
	}{
		{name: "Empty", words: []uint64{}, want: true},
		{name: "Single zero", words: []uint64{0}, want: true},
		{name: "Single nonzero", words: []uint64{1}, want: false},
		{name: "8 zeros (one stride)", words: make([]uint64, 8), want: true},
		{name: "Last of stride set", words: []uint64{0, 0, 0, 0, 0, 0, 0, 1 << 63}, want: false},
		{name: "9 words (stride + tail)", words: []uint64{0, 0, 0, 0, 0, 0, 0, 0, 4}, want: false},
		{name: "16 zeros", words: make([]uint64, 16), want: true},
		{name: "Second stride set", words: append(make([]uint64, 15), 2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsZero(tt.words))
		})
	}
}

func TestNonZeroMask(t *testing.T) {
	tests := []struct {
		name  string
		words []uint64
		want  uint64
	}{
		{name: "Empty", words: nil, want: 0},
		{name: "All zero", words: make([]uint64, 8), want: 0},
		{name: "Alternating", words: []uint64{1, 0, 1 << 63, 0, 7, 0, 0, ^uint64(0)}, want: 0b1001_0101},
		{name: "Top bit only", words: []uint64{0, 1 << 63}, want: 0b10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NonZeroMask(tt.words))
		})
	}

	t.Run("Truncated to MaxGroupWords", func(t *testing.T) {
		words := make([]uint64, MaxGroupWords+4)
		for i := range words {
			words[i] = 1
		}
		assert.Equal(t, ^uint64(0), NonZeroMask(words))
	})
}

func TestNonZeroMaskMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 200; n++ {
		words := make([]uint64, r.Intn(MaxGroupWords+1))
		for i := range words {
			if r.Intn(3) == 0 {
				words[i] = r.Uint64()
			}
		}

		var want uint64
		for i, w := range words {
			if w != 0 {
				want |= 1 << i
			}
		}
		assert.Equal(t, want, NonZeroMask(words))
		assert.Equal(t, want == 0, IsZero(words))
	}
}

func TestPopcountWords(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 3, 4, 5, 8, 63, 100} {
		words := make([]uint64, n)
		want := 0
		for i := range words {
			words[i] = r.Uint64()
			want += bits.OnesCount64(words[i])
		}
		assert.Equal(t, want, PopcountWords(words), "n=%d", n)
	}
}
