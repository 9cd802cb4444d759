// Package bitops provides bit manipulation primitives for unsigned integers.
//
// Every function is generic over Word and returns a new value; nothing is
// mutated in place. Bit positions start at 0 (least significant bit). The
// highest position of a W-bit word is W-1.
//
// # Fields
//
// Several values can be packed into one word. The example below builds an
// x86 IOAPIC redirection entry:
//
//	entry := bitops.SetBitsExactN(uint64(0),
//	    bitops.Field[uint64]{Value: 7, Bits: 8, Shift: 0},      // vector
//	    bitops.Field[uint64]{Value: 0b111, Bits: 3, Shift: 8},  // delivery mode
//	    bitops.Field[uint64]{Value: 1, Bits: 1, Shift: 13},     // pin polarity
//	    bitops.Field[uint64]{Value: 13, Bits: 8, Shift: 56},    // destination
//	)
//
// # Panics
//
// Bit positions, widths and shifts outside the range of the word type are
// programmer errors and panic.
package bitops
