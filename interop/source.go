package interop

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"
	kbitmap "github.com/kelindar/bitmap"

	"github.com/hupe1980/bitpos"
)

// peekable is the iterator shape shared by roaring and roaring64.
type peekable[T uint32 | uint64] interface {
	HasNext() bool
	PeekNext() T
	Next() T
}

// DenseSource expands a sorted integer iterator into dense 64-bit words.
// Word i covers values [64*i, 64*i+64). Memory use is constant; zero words
// between runs are produced on the fly.
type DenseSource[T uint32 | uint64] struct {
	it    peekable[T]
	index uint64 // next word to produce
	total uint64 // words up to and including the one holding the maximum
}

func newDenseSource[T uint32 | uint64](it peekable[T], empty bool, maximum T) *DenseSource[T] {
	s := &DenseSource[T]{it: it}
	if !empty {
		s.total = uint64(maximum)/64 + 1
	}
	return s
}

// Next implements bitpos.Source.
func (s *DenseSource[T]) Next() (uint64, bool) {
	if s.index >= s.total {
		return 0, false
	}
	lo := s.index * 64
	var word uint64
	for s.it.HasNext() && uint64(s.it.PeekNext())-lo < 64 {
		word |= 1 << (uint64(s.it.Next()) - lo)
	}
	s.index++
	return word, true
}

// Remaining implements bitpos.SizedSource.
func (s *DenseSource[T]) Remaining() int {
	return int(s.total - s.index) //nolint:gosec // bounded by the bitmap maximum
}

// FromRoaring returns a sized word source over the values of rb. The bitmap
// must not be modified while the source is in use.
func FromRoaring(rb *roaring.Bitmap) *DenseSource[uint32] {
	if rb.IsEmpty() {
		return newDenseSource[uint32](rb.Iterator(), true, 0)
	}
	return newDenseSource[uint32](rb.Iterator(), false, rb.Maximum())
}

// FromRoaring64 is FromRoaring for 64-bit Roaring bitmaps.
func FromRoaring64(rb *roaring64.Bitmap) *DenseSource[uint64] {
	if rb.IsEmpty() {
		return newDenseSource[uint64](rb.Iterator(), true, 0)
	}
	return newDenseSource[uint64](rb.Iterator(), false, rb.Maximum())
}

// FromBitSet returns a sized source over the backing words of bs.
// The words are shared, not copied.
func FromBitSet(bs *bitset.BitSet) *bitpos.SliceSource[uint64] {
	return bitpos.FromSlice(bs.Words())
}

// FromKelindar returns a sized source over bm.
func FromKelindar(bm kbitmap.Bitmap) *bitpos.SliceSource[uint64] {
	return bitpos.FromSlice([]uint64(bm))
}
