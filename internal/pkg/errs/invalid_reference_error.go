package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReference is the sentinel wrapped by every InvalidReferenceError.
var ErrInvalidReference = errors.New("reference is invalid")

// InvalidReferenceError reports identifiers that point to objects which do not exist,
// e.g. an order referencing dishes missing from the catalog.
type InvalidReferenceError struct {
	ParamName string
	Missing   []any
	Cause     error
}

// NewInvalidReferenceError creates an InvalidReferenceError listing the missing identifiers.
//
// Example:
//
//	return errs.NewInvalidReferenceError("dish_ids", 3, 7)
func NewInvalidReferenceError(paramName string, missing ...any) *InvalidReferenceError {
	return &InvalidReferenceError{
		ParamName: paramName,
		Missing:   missing,
	}
}

func NewInvalidReferenceErrorWithCause(paramName string, cause error, missing ...any) *InvalidReferenceError {
	return &InvalidReferenceError{
		ParamName: paramName,
		Missing:   missing,
		Cause:     cause,
	}
}

func (e *InvalidReferenceError) Error() string {
	ids := make([]string, 0, len(e.Missing))
	for _, id := range e.Missing {
		ids = append(ids, fmt.Sprint(id))
	}

	msg := fmt.Sprintf("%s: %s, missing: %s", ErrInvalidReference, e.ParamName, strings.Join(ids, ", "))
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}
