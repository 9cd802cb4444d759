package bitpos

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/hupe1980/bitpos/internal/conv"
	"github.com/hupe1980/bitpos/internal/simd"
	"github.com/hupe1980/bitpos/metric"
)

// BatchedIter yields the set-bit positions of a 64-bit word source, like
// BitmapIter[uint64], but pulls words in groups and skips a group whose words
// are all zero with a single comparison. It wins on sparse bitmaps such as
// dirty-page or tombstone maps.
//
// Output is identical to BitmapIter[uint64] over the same words.
//
// Memory layout of one refill (group size 8):
//
//	┌────┬────┬────┬────┬────┬────┬────┬────┐
//	│ w0 │ w1 │ w2 │ w3 │ w4 │ w5 │ w6 │ w7 │  8 × uint64 = 512 bits
//	└────┴────┴────┴────┴────┴────┴────┴────┘
//	  all zero → skip 512 bits, refill
//	  otherwise → drain the nonzero words through BitsIter
type BatchedIter struct {
	src   SizedSource[uint64]
	group []uint64 // buffer of the current group, len == group size
	mask  uint64   // nonzero words of group not yet drained

	current BitsIter[uint64]
	active  bool   // current holds a word from group
	base    uint64 // bit offset of the word in current
	start   uint64 // global index of group[0]
	index   uint64 // global index of the first word after the group

	done  bool
	err   error
	stats Stats
	opts  options
}

// NewBatchedIter creates a grouped iterator over src.
//
// No words are pulled until the first call to Next. It panics if the
// configured group size is outside [1, MaxGroupSize].
func NewBatchedIter(src SizedSource[uint64], opts ...Option) *BatchedIter {
	o := applyOptions(opts)
	if o.groupSize < 1 || o.groupSize > MaxGroupSize {
		panic(fmt.Errorf("bitpos: %w: %d not in [1, %d]", ErrInvalidGroupSize, o.groupSize, MaxGroupSize))
	}
	return &BatchedIter{
		src:   src,
		group: make([]uint64, o.groupSize),
		stats: Stats{Kind: metric.KindBatched},
		opts:  o,
	}
}

// NewBatchedSliceIter creates a BatchedIter over a slice of words.
func NewBatchedSliceIter(words []uint64, opts ...Option) *BatchedIter {
	return NewBatchedIter(FromSlice(words), opts...)
}

// GroupSize returns the number of words per zero test.
func (it *BatchedIter) GroupSize() int {
	return len(it.group)
}

// Next returns the next global set-bit position.
func (it *BatchedIter) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}
	for {
		if it.active {
			if bit, ok := it.current.Next(); ok {
				it.stats.Positions++
				return it.base + uint64(bit), true
			}
			it.active = false
		}

		// Drain the next nonzero buffered word.
		if it.mask != 0 {
			k := bits.TrailingZeros64(it.mask)
			it.mask &= it.mask - 1

			base, err := conv.WordOffset(it.start+uint64(k), 64)
			if err != nil {
				it.finish(overflowError(err))
				return 0, false
			}
			it.base = base
			it.current = NewBitsIter(it.group[k])
			it.active = true
			continue
		}

		if !it.refill() {
			return 0, false
		}
	}
}

// refill loads the next group that has at least one set bit. It returns false
// once the iterator has finished.
func (it *BatchedIter) refill() bool {
	for {
		remaining := it.src.Remaining()
		if remaining <= 0 {
			it.finish(nil)
			return false
		}

		n := len(it.group)
		if remaining < n {
			if it.opts.partialPolicy == PartialGroupStrict {
				it.finish(Error.Wrap(&ShortGroupError{Remaining: remaining, GroupSize: n}))
				return false
			}
			n = remaining
		}

		buf := it.group[:n]
		for i := range buf {
			w, ok := it.src.Next()
			if !ok {
				it.finish(Error.Wrap(fmt.Errorf("%w: source announced %d words, ended after %d",
					ErrSourceProtocol, remaining, i)))
				return false
			}
			buf[i] = w
		}
		it.stats.Words += uint64(n)

		start := it.index
		index, err := conv.AddWords(start, uint64(n))
		if err != nil {
			it.finish(overflowError(err))
			return false
		}
		it.index = index

		if simd.IsZero(buf) {
			it.stats.GroupsSkipped++
			continue
		}

		it.stats.GroupsScanned++
		it.start = start
		it.mask = simd.NonZeroMask(buf)
		return true
	}
}

// Err returns the error that stopped iteration, if any.
func (it *BatchedIter) Err() error {
	return it.err
}

// All returns the remaining positions as a sequence.
func (it *BatchedIter) All() iter.Seq[uint64] {
	return Seq(it)
}

// Stats returns the work done so far.
func (it *BatchedIter) Stats() Stats {
	return it.stats
}

func (it *BatchedIter) finish(err error) {
	it.done = true
	it.err = err
	it.opts.report(it.stats, err)
}
