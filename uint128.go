package bitpos

import (
	"iter"
	"math/bits"
)

// U128 is a 128-bit word. Bit i is bit i of Lo for i < 64 and bit i-64 of Hi
// otherwise.
type U128 struct {
	Lo, Hi uint64
}

// IsZero reports whether no bit is set.
func (u U128) IsZero() bool {
	return u.Lo|u.Hi == 0
}

// TrailingZeros returns the index of the lowest set bit, or 128 for zero.
func (u U128) TrailingZeros() uint {
	if u.Lo != 0 {
		return uint(bits.TrailingZeros64(u.Lo))
	}
	return 64 + uint(bits.TrailingZeros64(u.Hi))
}

// OnesCount returns the number of set bits.
func (u U128) OnesCount() int {
	return bits.OnesCount64(u.Lo) + bits.OnesCount64(u.Hi)
}

// Bits128Iter yields the set-bit positions of a U128, lowest first.
type Bits128Iter struct {
	lo, hi BitsIter[uint64]
}

// NewBits128Iter creates an iterator over the set bits of u.
func NewBits128Iter(u U128) Bits128Iter {
	return Bits128Iter{lo: NewBitsIter(u.Lo), hi: NewBitsIter(u.Hi)}
}

// Next returns the next set-bit position in [0, 128).
func (it *Bits128Iter) Next() (uint, bool) {
	if bit, ok := it.lo.Next(); ok {
		return bit, true
	}
	if bit, ok := it.hi.Next(); ok {
		return 64 + bit, true
	}
	return 0, false
}

// Bits128 returns a sequence of the set-bit positions of u.
func Bits128(u U128) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := NewBits128Iter(u)
		for bit, ok := it.Next(); ok; bit, ok = it.Next() {
			if !yield(bit) {
				return
			}
		}
	}
}

// U128Source yields 128-bit words as consecutive 64-bit halves, Lo first.
// Bit positions over the halves equal bit positions over the 128-bit words.
type U128Source struct {
	words []U128
	pos   int // half-word index
}

// FromU128 returns a sized uint64 source over words.
func FromU128(words []U128) *U128Source {
	return &U128Source{words: words}
}

// Next implements Source.
func (s *U128Source) Next() (uint64, bool) {
	if s.pos >= 2*len(s.words) {
		return 0, false
	}
	w := s.words[s.pos/2]
	half := w.Lo
	if s.pos%2 == 1 {
		half = w.Hi
	}
	s.pos++
	return half, true
}

// Remaining implements SizedSource.
func (s *U128Source) Remaining() int {
	return 2*len(s.words) - s.pos
}
