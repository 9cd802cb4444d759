package bitpos

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for all iteration errors.
var Error = errs.Class("bitpos")

var (
	// ErrShortGroup is returned when a source ends with fewer words than the
	// group size under PartialGroupStrict.
	ErrShortGroup = errors.New("short final group")

	// ErrSourceProtocol is returned when a SizedSource yields fewer words than
	// its Remaining count announced.
	ErrSourceProtocol = errors.New("word source protocol violation")

	// ErrPositionOverflow is returned when a bit position does not fit uint64.
	ErrPositionOverflow = errors.New("bit position overflows uint64")

	// ErrInvalidGroupSize is the panic value for a group size outside
	// [1, MaxGroupSize].
	ErrInvalidGroupSize = errors.New("invalid group size")
)

// ShortGroupError describes a rejected short final group.
//
// errors.Is(err, ErrShortGroup) reports true for it.
type ShortGroupError struct {
	Remaining int
	GroupSize int
}

func (e *ShortGroupError) Error() string {
	return fmt.Sprintf("short final group: %d words remaining, group size %d", e.Remaining, e.GroupSize)
}

func (e *ShortGroupError) Unwrap() error { return ErrShortGroup }

func overflowError(cause error) error {
	return Error.Wrap(fmt.Errorf("%w: %w", ErrPositionOverflow, cause))
}
