package bitpos

import "iter"

// Source produces the words of a bitmap in order, one at a time.
// A source is consumed once; it may be unbounded.
type Source[W Word] interface {
	// Next returns the next word, or false when the source is exhausted.
	Next() (W, bool)
}

// SizedSource is a Source that knows how many words it still holds.
// BatchedIter needs it to tell a full group from a short final one.
type SizedSource[W Word] interface {
	Source[W]
	// Remaining returns the exact number of words Next will still return.
	Remaining() int
}

// SliceSource reads words from a slice. It never writes to the slice, so
// several sources may share one backing array.
type SliceSource[W Word] struct {
	words []W
	pos   int
}

// FromSlice returns a sized source over words.
func FromSlice[W Word](words []W) *SliceSource[W] {
	return &SliceSource[W]{words: words}
}

// Next implements Source.
func (s *SliceSource[W]) Next() (W, bool) {
	if s.pos >= len(s.words) {
		return 0, false
	}
	w := s.words[s.pos]
	s.pos++
	return w, true
}

// Remaining implements SizedSource.
func (s *SliceSource[W]) Remaining() int {
	return len(s.words) - s.pos
}

// Rest returns the words not yet consumed.
func (s *SliceSource[W]) Rest() []W {
	return s.words[s.pos:]
}

// FuncSource adapts a function to Source.
type FuncSource[W Word] func() (W, bool)

// FromFunc returns a source calling fn for every word.
func FromFunc[W Word](fn func() (W, bool)) FuncSource[W] {
	return FuncSource[W](fn)
}

// Next implements Source.
func (f FuncSource[W]) Next() (W, bool) {
	return f()
}

// SeqSource pulls words from an iter.Seq.
type SeqSource[W Word] struct {
	next func() (W, bool)
	stop func()
}

// FromSeq returns a source pulling from seq. Call Stop if the source is
// abandoned before it is exhausted.
func FromSeq[W Word](seq iter.Seq[W]) *SeqSource[W] {
	next, stop := iter.Pull(seq)
	return &SeqSource[W]{next: next, stop: stop}
}

// Next implements Source.
func (s *SeqSource[W]) Next() (W, bool) {
	return s.next()
}

// Stop releases the underlying pull iterator. It is safe to call twice.
func (s *SeqSource[W]) Stop() {
	s.stop()
}

// TakeSource limits a source to at most n words and reports the limit as its
// remaining count.
type TakeSource[W Word] struct {
	src  Source[W]
	left int
}

// Take returns a sized view of the first n words of src. The caller asserts
// src holds at least n words; if it holds fewer, BatchedIter stops with
// ErrSourceProtocol.
func Take[W Word](src Source[W], n int) *TakeSource[W] {
	return &TakeSource[W]{src: src, left: max(n, 0)}
}

// Next implements Source.
func (s *TakeSource[W]) Next() (W, bool) {
	if s.left == 0 {
		return 0, false
	}
	w, ok := s.src.Next()
	if !ok {
		s.left = 0
		return 0, false
	}
	s.left--
	return w, true
}

// Remaining implements SizedSource.
func (s *TakeSource[W]) Remaining() int {
	return s.left
}

// RepeatSource yields the same word forever.
type RepeatSource[W Word] struct {
	word W
}

// Repeat returns an unbounded source of w.
func Repeat[W Word](w W) RepeatSource[W] {
	return RepeatSource[W]{word: w}
}

// Next implements Source.
func (s RepeatSource[W]) Next() (W, bool) {
	return s.word, true
}
