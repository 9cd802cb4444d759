package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// WordOffset returns words*wordBits, the bit offset of the word at index words.
func WordOffset(words uint64, wordBits uint) (uint64, error) {
	hi, lo := bits.Mul64(words, uint64(wordBits))
	if hi != 0 {
		return 0, fmt.Errorf("%w: word %d * %d bits exceeds uint64", ErrOverflow, words, wordBits)
	}
	return lo, nil
}

// AddPos returns base+bit.
func AddPos(base uint64, bit uint) (uint64, error) {
	sum, carry := bits.Add64(base, uint64(bit), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: position %d + %d exceeds uint64", ErrOverflow, base, bit)
	}
	return sum, nil
}

// AddWords returns a+b for word counters.
func AddWords(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: word count %d + %d exceeds uint64", ErrOverflow, a, b)
	}
	return sum, nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint64 (negative)", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Uint64ToUint32 converts uint64 to uint32 safely.
func Uint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}
