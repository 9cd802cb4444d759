// Package conv provides overflow-checked integer arithmetic and conversions.
//
// Bit positions in a bitmap are reported as uint64. Computing them involves a
// word index multiplied by the word width plus an in-word offset; both steps
// are checked here so a position can never silently wrap.
//
// Use cases:
//   - Computing the global bit offset of a word (WordOffset)
//   - Adding an in-word bit position to a word offset (AddPos)
//   - Narrowing positions for 32-bit containers (Uint64ToUint32)
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
