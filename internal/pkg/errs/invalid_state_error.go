package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState is the sentinel wrapped by every InvalidStateError.
var ErrInvalidState = errors.New("state is invalid")

// InvalidStateError reports an operation that the current state of an object
// does not permit. Allowed lists the states reachable from Current; an empty
// list means Current is final.
type InvalidStateError struct {
	ParamName string
	Current   string
	Allowed   []string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for a rejected state transition.
//
// Example:
//
//	return errs.NewInvalidStateError("status", "готов", []string{"доставляется", "завершен"})
func NewInvalidStateError(paramName, current string, allowed []string) *InvalidStateError {
	return &InvalidStateError{
		ParamName: paramName,
		Current:   current,
		Allowed:   allowed,
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError for operations other
// than a plain transition, with cause describing the rule that was broken.
func NewInvalidStateErrorWithCause(paramName, current string, allowed []string, cause error) *InvalidStateError {
	return &InvalidStateError{
		ParamName: paramName,
		Current:   current,
		Allowed:   allowed,
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	var msg string
	switch {
	case e.Cause != nil:
		msg = fmt.Sprintf("%s: %s '%s' (cause: %v)", ErrInvalidState, e.ParamName, e.Current, e.Cause)
	case len(e.Allowed) == 0:
		msg = fmt.Sprintf("%s: %s '%s' is final and cannot be changed", ErrInvalidState, e.ParamName, e.Current)
	default:
		msg = fmt.Sprintf("%s: from %s '%s' can only transition to: %s",
			ErrInvalidState, e.ParamName, e.Current, strings.Join(e.Allowed, ", "))
	}
	return sanitize(msg)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
