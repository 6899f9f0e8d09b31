package codon

import (
	"errors"
	"fmt"
)

// InvalidCodeError is returned for any character outside the 15-symbol
// IUPAC alphabet, carrying the offending character.
type InvalidCodeError struct {
	Code byte
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid IUPAC code %q", string(e.Code))
}

// InvalidCodonLengthError is returned when a degenerate codon is not
// exactly three symbols long.
type InvalidCodonLengthError struct {
	Length int
}

func (e *InvalidCodonLengthError) Error() string {
	return fmt.Sprintf("degenerate codon must be 3 symbols, got %d", e.Length)
}

var (
	// ErrEmptyTarget is returned by Synthesize when, after filtering to the
	// 20 standard amino acids, nothing remains of the target.
	ErrEmptyTarget = errors.New("no valid amino acids in target")

	// ErrCannotRemoveLastPosition is returned when a removal would leave a
	// library without positions.
	ErrCannotRemoveLastPosition = errors.New("a library must keep at least one position")

	// ErrNoCanonicalCode is an internal invariant violation: every non-empty
	// base subset reachable from the fixed tables has an IUPAC symbol.
	ErrNoCanonicalCode = errors.New("no IUPAC code for base set")
)
