package cubecipher

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubecipher package.
var (
	// Construction errors
	ErrInvalidLength = errors.New("cubecipher: invalid facet string length")

	// Parsing errors
	ErrUnknownMove = errors.New("cubecipher: unknown move")

	// Solver errors
	ErrUnsolvableState = errors.New("cubecipher: unsolvable cube state")
)

// LengthError reports a colors or payload input that does not hold exactly
// Facets units.
type LengthError struct {
	Field string // "colors" or "payload"
	Got   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %s has %d units, want %d", ErrInvalidLength, e.Field, e.Got, Facets)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// UnknownMoveError identifies the first notation token that could not be
// resolved through the move catalog.
type UnknownMoveError struct {
	Token string
	Index int // position of the token in the parsed sequence, -1 for a lone token
}

func (e *UnknownMoveError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %q", ErrUnknownMove, e.Token)
	}
	return fmt.Sprintf("%s: %q at token %d", ErrUnknownMove, e.Token, e.Index)
}

func (e *UnknownMoveError) Unwrap() error { return ErrUnknownMove }

// UnsolvableError is returned by the solver when the cube is malformed or
// lies outside the group generated by the move catalog.
type UnsolvableError struct {
	Phase  Phase
	Reason string
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUnsolvableState, e.Phase, e.Reason)
}

func (e *UnsolvableError) Unwrap() error { return ErrUnsolvableState }
