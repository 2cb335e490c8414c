package errs

import (
	"errors"
	"fmt"
)

// ErrObjectIsReferenced is the sentinel wrapped by every ObjectIsReferencedError.
var ErrObjectIsReferenced = errors.New("object is referenced")

// ObjectIsReferencedError reports an attempt to remove an object that other
// objects still point to.
type ObjectIsReferencedError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectIsReferencedError(paramName string, id any) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectIsReferencedErrorWithCause(paramName string, id any, cause error) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectIsReferencedError) Error() string {
	msg := fmt.Sprintf("%s: %s %v", ErrObjectIsReferenced, e.ParamName, e.ID)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ObjectIsReferencedError) Unwrap() error {
	return ErrObjectIsReferenced
}
