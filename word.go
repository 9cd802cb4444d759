package bitpos

import (
	"math/bits"

	"github.com/hupe1980/bitpos/bitops"
)

// Word is the set of unsigned integer types a bitmap can be built from.
type Word = bitops.Word

// WordBits returns the width of W in bits.
func WordBits[W Word]() uint {
	return bitops.Width[W]()
}

// trailingZeros returns the index of the lowest set bit of a nonzero word.
// Zero-extending to 64 bits keeps the index unchanged.
func trailingZeros[W Word](w W) uint {
	return uint(bits.TrailingZeros64(uint64(w)))
}

func onesCount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}
