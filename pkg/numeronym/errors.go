package numeronym

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSequence: the digits to search are not exactly SequenceLength decimal digits,
	// or a raw phone number does not have the expected shape.
	ErrInvalidSequence = errors.New("invalid digit sequence")
	// ErrInvariantViolation: an internal consistency check failed; this is a bug, not bad input.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrStoreOverflow: more paths were found than a Store can hold.
	ErrStoreOverflow = fmt.Errorf("%w: path store overflow", ErrInvariantViolation)
)

// IsInternal reports whether err comes from a broken invariant rather than from the input.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
