package bitops

import (
	"fmt"
	"math/bits"
)

// Word is the set of unsigned integer types supported by this package.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits of W.
func Width[W Word]() uint {
	return uint(bits.OnesCount64(uint64(^W(0))))
}

func assertBit[W Word](bit uint) {
	if w := Width[W](); bit >= w {
		panic(fmt.Sprintf("bitops: bit position %d out of range for %d-bit word", bit, w))
	}
}

func assertCount[W Word](name string, n uint) {
	if w := Width[W](); n > w {
		panic(fmt.Sprintf("bitops: %s %d out of range for %d-bit word", name, n, w))
	}
}

// SetBit sets the given bit to 1.
func SetBit[W Word](val W, bit uint) W {
	assertBit[W](bit)
	return val | W(1)<<bit
}

// ClearBit sets the given bit to 0.
func ClearBit[W Word](val W, bit uint) W {
	assertBit[W](bit)
	return val &^ (W(1) << bit)
}

// SetBitExact sets the given bit to 1 if set is true and to 0 otherwise.
func SetBitExact[W Word](val W, bit uint, set bool) W {
	if set {
		return SetBit(val, bit)
	}
	return ClearBit(val, bit)
}

// GetBit returns the value of the given bit (0 or 1).
func GetBit[W Word](val W, bit uint) W {
	assertBit[W](bit)
	return (val >> bit) & 1
}

// IsSet reports whether the given bit is 1.
func IsSet[W Word](val W, bit uint) bool {
	return GetBit(val, bit) == 1
}

// ToggleBit flips the given bit.
func ToggleBit[W Word](val W, bit uint) W {
	assertBit[W](bit)
	return ToggleBits(val, 1, bit)
}

// ToggleBits flips n contiguous bits starting at shift.
func ToggleBits[W Word](val W, n, shift uint) W {
	return val ^ CreateShiftedMask[W](n, shift)
}

// SetBits ORs the low n bits of value into base at shift. Bits already set in
// base stay set.
func SetBits[W Word](base, value W, n, shift uint) W {
	assertCount[W]("shift", shift)
	value &= CreateMask[W](n)
	return base | value<<shift
}

// SetBitsExact is SetBits after clearing the n bits at shift, so the field
// ends up holding exactly value.
func SetBitsExact[W Word](base, value W, n, shift uint) W {
	base = ClearBits(base, CreateShiftedMask[W](n, shift))
	return SetBits(base, value, n, shift)
}

// Field describes a value stored in Bits bits at offset Shift.
type Field[W Word] struct {
	Value W
	Bits  uint
	Shift uint
}

// SetBitsN applies SetBits for every field in order.
func SetBitsN[W Word](base W, fields ...Field[W]) W {
	for _, f := range fields {
		base = SetBits(base, f.Value, f.Bits, f.Shift)
	}
	return base
}

// SetBitsExactN applies SetBitsExact for every field in order.
func SetBitsExactN[W Word](base W, fields ...Field[W]) W {
	for _, f := range fields {
		base = SetBitsExact(base, f.Value, f.Bits, f.Shift)
	}
	return base
}

// ClearBits clears every bit that is set in mask.
func ClearBits[W Word](base, mask W) W {
	return base &^ mask
}

// GetBits extracts n bits starting at shift.
func GetBits[W Word](base W, n, shift uint) W {
	assertCount[W]("shift", shift)
	return (base >> shift) & CreateMask[W](n)
}

// HighestBit returns the position of the highest set bit.
// It returns false for zero.
func HighestBit[W Word](val W) (uint, bool) {
	if val == 0 {
		return 0, false
	}
	return uint(bits.Len64(uint64(val))) - 1, true
}

// LowestBit returns the position of the lowest set bit.
// It returns false for zero.
func LowestBit[W Word](val W) (uint, bool) {
	if val == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(uint64(val))), true
}

// CreateMask returns a mask with the n lowest bits set.
func CreateMask[W Word](n uint) W {
	assertCount[W]("mask width", n)
	if n == Width[W]() {
		return ^W(0)
	}
	return W(1)<<n - 1
}

// CreateShiftedMask returns CreateMask(n) shifted left by shift.
func CreateShiftedMask[W Word](n, shift uint) W {
	assertCount[W]("shift", shift)
	return CreateMask[W](n) << shift
}
