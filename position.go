package bitpos

import (
	"iter"

	"github.com/hupe1980/bitpos/internal/simd"
)

// PositionSource yields global bit positions in increasing order.
// BitmapIter and BatchedIter implement it.
type PositionSource interface {
	Next() (uint64, bool)
}

// Count drains ps and returns the number of positions it yielded.
func Count(ps PositionSource) int {
	n := 0
	for _, ok := ps.Next(); ok; _, ok = ps.Next() {
		n++
	}
	return n
}

// Collect drains ps into a new slice.
func Collect(ps PositionSource) []uint64 {
	return AppendTo(nil, ps)
}

// AppendTo drains ps, appending every position to dst.
func AppendTo(dst []uint64, ps PositionSource) []uint64 {
	for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
		dst = append(dst, pos)
	}
	return dst
}

// Seq adapts ps to a range-over-func sequence. Breaking out of the loop
// leaves ps where it stopped.
func Seq(ps PositionSource) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for pos, ok := ps.Next(); ok; pos, ok = ps.Next() {
			if !yield(pos) {
				return
			}
		}
	}
}

// CountOnes returns the number of set bits in words without iterating
// positions.
func CountOnes(words []uint64) int {
	return simd.PopcountWords(words)
}
