// Package guard detects domain values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created by its constructor. Embedding it in a
// struct lets Validate tell a constructed value apart from a zero value, which
// would otherwise slip past every invariant the constructor enforces.
//
// Example usage:
//
//	var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPrice(amount float64) (Price, error) {
//	    if amount <= 0 {
//	        return Price{}, errs.NewValueIsInvalidError("price")
//	    }
//	    return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
