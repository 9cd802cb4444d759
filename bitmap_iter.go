package bitpos

import (
	"iter"

	"github.com/hupe1980/bitpos/internal/conv"
	"github.com/hupe1980/bitpos/metric"
)

// BitmapIter yields the set-bit positions of a word source, treating the
// words as one long bitmap. Word i contributes positions [i*W, (i+1)*W).
//
// Invariant: consumed + (position within the current word) is the global
// position. consumed is a multiple of W, and W divides 2^64, so the sum never
// overflows once consumed itself fits.
type BitmapIter[W Word] struct {
	src      Source[W]
	width    uint
	consumed uint64 // bits of all words before the current one
	current  BitsIter[W]

	done  bool
	err   error
	stats Stats
	opts  options
}

// NewBitmapIter creates an iterator over src.
//
// The first word is pulled immediately; an empty source behaves like a single
// zero word. Nothing else is read until Next is called.
func NewBitmapIter[W Word](src Source[W], opts ...Option) *BitmapIter[W] {
	it := &BitmapIter[W]{
		src:   src,
		width: WordBits[W](),
		stats: Stats{Kind: metric.KindBitmap},
		opts:  applyOptions(opts),
	}
	first, ok := src.Next()
	if ok {
		it.stats.Words++
	}
	it.current = NewBitsIter(first)
	return it
}

// NewSliceIter creates a BitmapIter over a slice of words.
func NewSliceIter[W Word](words []W, opts ...Option) *BitmapIter[W] {
	return NewBitmapIter[W](FromSlice(words), opts...)
}

// Next returns the next global set-bit position.
func (it *BitmapIter[W]) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}
	for {
		if bit, ok := it.current.Next(); ok {
			it.stats.Positions++
			return it.consumed + uint64(bit), true
		}

		// Current word exhausted: load the next one or stop.
		word, ok := it.src.Next()
		if !ok {
			it.finish(nil)
			return 0, false
		}
		it.stats.Words++

		consumed, err := conv.AddPos(it.consumed, it.width)
		if err != nil {
			it.finish(overflowError(err))
			return 0, false
		}
		it.consumed = consumed
		it.current = NewBitsIter(word)
	}
}

// Err returns the error that stopped iteration, if any.
func (it *BitmapIter[W]) Err() error {
	return it.err
}

// All returns the remaining positions as a sequence.
func (it *BitmapIter[W]) All() iter.Seq[uint64] {
	return Seq(it)
}

// Stats returns the work done so far.
func (it *BitmapIter[W]) Stats() Stats {
	return it.stats
}

func (it *BitmapIter[W]) finish(err error) {
	it.done = true
	it.err = err
	it.opts.report(it.stats, err)
}
