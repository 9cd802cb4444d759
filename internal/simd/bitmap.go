package simd

import "math/bits"

// ==============================================================================
// Word group operations
// ==============================================================================
//
// These operations back the batched bitmap iterator. A group is a short run of
// uint64 words (8 by default, one 512-bit register) tested for "any bit set"
// with a single comparison against zero.

// MaxGroupWords is the largest group NonZeroMask can describe.
const MaxGroupWords = 64

// IsZero reports whether every word is zero.
// The words are OR-reduced eight at a time and compared once per stride.
func IsZero(words []uint64) bool {
	i := 0
	for ; i+8 <= len(words); i += 8 {
		acc := (words[i] | words[i+1]) | (words[i+2] | words[i+3]) |
			(words[i+4] | words[i+5]) | (words[i+6] | words[i+7])
		if acc != 0 {
			return false
		}
	}
	var acc uint64
	for ; i < len(words); i++ {
		acc |= words[i]
	}
	return acc == 0
}

// NonZeroMask returns a mask with bit i set when words[i] != 0.
// Only the first MaxGroupWords words are considered.
func NonZeroMask(words []uint64) uint64 {
	if len(words) > MaxGroupWords {
		words = words[:MaxGroupWords]
	}
	var mask uint64
	for i, w := range words {
		// (w | -w) has its top bit set iff w != 0.
		mask |= ((w | -w) >> 63) << uint(i)
	}
	return mask
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
