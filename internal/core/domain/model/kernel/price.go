package kernel

import (
	"math"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	// PriceMin is the smallest price a dish can have.
	PriceMin = 0.01
	// PriceMax is the largest price a dish can have.
	PriceMax = 99999.99
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is the cost of a dish in the restaurant currency, rounded to cents.
// The zero value is invalid; use NewPrice.
//
// Example:
//
//	price, err := kernel.NewPrice(12.5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price.Amount()) // 12.5
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price within [PriceMin, PriceMax]. The amount is rounded
// to two decimal places before the range check.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidError("price")
	}

	rounded := math.Round(amount*100) / 100
	if rounded < PriceMin || rounded > PriceMax {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, PriceMin, PriceMax)
	}

	return Price{
		amount: rounded,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the price value.
func (p Price) Amount() float64 {
	return p.amount
}

// IsEqual compares two prices by amount. Both prices must be valid.
func (p Price) IsEqual(other Price) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}
	return p.amount == other.amount, nil
}

// Validate returns ErrPriceIsNotConstructed if the price was not built by NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
