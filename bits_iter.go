package bitpos

import "iter"

// BitsIter yields the positions of the set bits of one word, lowest first.
//
// Positions are in [0, WordBits[W]()). The zero value iterates nothing.
type BitsIter[W Word] struct {
	value W
}

// NewBitsIter creates an iterator over the set bits of value.
func NewBitsIter[W Word](value W) BitsIter[W] {
	return BitsIter[W]{value: value}
}

// Next returns the next set-bit position.
// Once it returns false, it keeps returning false.
func (it *BitsIter[W]) Next() (uint, bool) {
	if it.value == 0 {
		return 0, false
	}
	tz := trailingZeros(it.value)
	it.value &= it.value - 1 // clear lowest set bit
	return tz, true
}

// Len returns the number of positions not yet returned.
func (it BitsIter[W]) Len() int {
	return onesCount(it.value)
}

// Bits returns a sequence of the set-bit positions of value.
func Bits[W Word](value W) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := NewBitsIter(value)
		for bit, ok := it.Next(); ok; bit, ok = it.Next() {
			if !yield(bit) {
				return
			}
		}
	}
}
