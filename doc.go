// Package bitpos enumerates set-bit positions in words and bitmaps.
//
// A bitmap is a sequence of fixed-width unsigned words. Bit i of word j sits
// at global position j*W + i, where W is the word width. The iterators in this
// package report global positions in strictly increasing order.
//
// # Iterators
//
//	BitsIter[W]    set bits of a single word (lowest first)
//	BitmapIter[W]  set bits across any Source[W], one word at a time
//	BatchedIter    set bits across a SizedSource[uint64], skipping all-zero
//	               groups of words with one comparison
//
// All three are pull iterators: call Next until it reports false. They are
// one-shot and not safe for concurrent use; to restart, build a new iterator
// over a fresh source.
//
// # Quick Start
//
//	it := bitpos.NewSliceIter([]uint8{0b1111_0010, 0b1000, 1})
//	for pos := range it.All() {
//	    fmt.Println(pos) // 1 4 5 6 7 11 16
//	}
//
// Sparse 64-bit bitmaps (dirty page tracking, tombstones) are faster with the
// batched iterator:
//
//	it := bitpos.NewBatchedIter(bitpos.FromSlice(dirty),
//	    bitpos.WithGroupSize(8),
//	    bitpos.WithPartialGroupPolicy(bitpos.PartialGroupPad),
//	)
//	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
//	    flush(pos)
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// # Word Widths
//
// Any type in the Word constraint works (uint8 through uint64, uint, uintptr).
// 128-bit words are represented by U128; FromU128 turns them into the
// equivalent stream of 64-bit halves.
//
// # Errors
//
// Iteration never panics on valid sources. Iterators stop and report through
// Err when a position would overflow uint64, when a SizedSource yields fewer
// words than it announced, or when a short final group is rejected by
// PartialGroupStrict. All errors belong to the Error class and match their
// sentinels with errors.Is.
//
// Scalar bit manipulation (set, clear, toggle, masks, fields) lives in the
// bitops subpackage.
package bitpos
