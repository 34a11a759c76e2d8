package go_sball

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError through errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrShapeMismatch matches every *ShapeMismatchError through errors.Is.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// InvalidInputError reports a point set, coordinate or parameter that was rejected
// before any index construction or search took place.
type InvalidInputError struct {
	// Set names the offending input ("reference", "query", "k", ...).
	Set string
	// Index is the position of the offending point, or -1 when the error is not about a single point.
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Set, e.Reason)
	}
	return fmt.Sprintf("invalid %s point %d: %s", e.Set, e.Index, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ShapeMismatchError reports a result whose row count does not match the number of query points.
type ShapeMismatchError struct {
	Expected int
	Actual   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: expected %d rows, got %d", e.Expected, e.Actual)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

func invalidParam(name, format string, args ...any) error {
	return &InvalidInputError{Set: name, Index: -1, Reason: fmt.Sprintf(format, args...)}
}
