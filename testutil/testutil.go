package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitpos/bitops"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// wordLocked returns a word of the given width where each bit is set with
// probability onesPercent/100. Caller must hold r.mu.
func (r *RNG) wordLocked(width uint, onesPercent float64) uint64 {
	switch {
	case onesPercent <= 0:
		return 0
	case onesPercent >= 100:
		return ^uint64(0) >> (64 - width)
	}
	var w uint64
	for i := uint(0); i < width; i++ {
		if r.rand.Float64()*100 < onesPercent {
			w |= 1 << i
		}
	}
	return w
}

// Bitmap returns n random words of type W with the given percentage of ones.
// Locks only once per call.
func Bitmap[W bitops.Word](r *RNG, n int, onesPercent float64) []W {
	r.mu.Lock()
	defer r.mu.Unlock()
	width := bitops.Width[W]()
	out := make([]W, n)
	for i := range out {
		out[i] = W(r.wordLocked(width, onesPercent))
	}
	return out
}

// Bitmap64 returns n random uint64 words with the given percentage of ones.
func (r *RNG) Bitmap64(n int, onesPercent float64) []uint64 {
	return Bitmap[uint64](r, n, onesPercent)
}

// DirtyBitmap returns n words in groups of groupSize where only a fraction
// dirtyRate of the groups has any bit set, modeling a dirty-page bitmap.
// Words in a dirty group hold one to four set bits each, or zero.
func (r *RNG) DirtyBitmap(n, groupSize int, dirtyRate float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, n)
	for start := 0; start < n; start += groupSize {
		if r.rand.Float64() >= dirtyRate {
			continue
		}
		end := min(start+groupSize, n)
		for i := start; i < end; i++ {
			if r.rand.Intn(2) == 0 {
				continue
			}
			for k := r.rand.Intn(4) + 1; k > 0; k-- {
				out[i] |= 1 << uint(r.rand.Intn(64))
			}
		}
	}
	return out
}

// ReferencePositions enumerates the set bits of words by testing every bit.
// It is slow on purpose: it shares no code with the iterators under test.
func ReferencePositions[W bitops.Word](words []W) []uint64 {
	width := uint64(bitops.Width[W]())
	var out []uint64
	for i, w := range words {
		for b := uint64(0); b < width; b++ {
			if (uint64(w)>>b)&1 == 1 {
				out = append(out, uint64(i)*width+b)
			}
		}
	}
	return out
}
