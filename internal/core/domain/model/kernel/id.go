package kernel

import (
	"fmt"
	"strconv"

	"restaurant/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be assigned by storage or parsed via NewID or IDFromString")

// ID is the surrogate identifier of a persisted entity. Storage assigns it on
// insert, so a freshly built aggregate carries the zero ID until it is saved.
//
// Example usage:
//
//	id, err := kernel.IDFromString(c.Param("order_id"))
//	if err != nil {
//	    return err
//	}
//	order, err := repo.Get(ctx, id)
type ID struct {
	value int64
}

// NewID wraps a storage-assigned identifier. The value must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for values known to be valid, such as test fixtures.
// It panics on invalid input.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal identifier, e.g. taken from a URL path.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identifier for persistence and transport.
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID) IsZero() bool {
	return id.value == 0
}

// Validate returns ErrIDIsNotConstructed for the zero ID.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
