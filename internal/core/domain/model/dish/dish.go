package dish

import (
	"errors"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	// MaxNameLength is the maximum number of characters in a dish name.
	MaxNameLength = 100
	// MaxDescriptionLength is the maximum number of characters in a dish description.
	MaxDescriptionLength = 500
	// MaxCategoryLength is the maximum number of characters in a dish category.
	MaxCategoryLength = 100
)

var (
	// ErrNameIsRequired is returned when a dish is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when a dish is created without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")
)

// Dish represents an item of the restaurant menu. It is an aggregate root of its own:
// orders reference dishes by identity and never change them.
//
// Example usage:
//
//	price, _ := kernel.NewPrice(450)
//	d, err := dish.NewDish("Борщ", "со сметаной", price, "супы")
//	if err != nil {
//	    // Handle validation error
//	}
//	saved, err := uow.DishRepository().Add(ctx, d)
type Dish struct {
	id          kernel.ID
	name        string
	description string
	price       kernel.Price
	category    string

	isConstructed bool
}

// NewDish creates a dish that has not been persisted yet. Surrounding whitespace
// is trimmed from every text field before validation.
func NewDish(name, description string, price kernel.Price, category string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setCategory(category),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish rebuilds a persisted dish. Unlike NewDish it requires a valid identifier.
func RestoreDish(id kernel.ID, name, description string, price kernel.Price, category string) (*Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDish(name, description, price, category)
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the Dish was built through NewDish or RestoreDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsPersisted reports whether storage has assigned an identifier to the dish.
func (d *Dish) IsPersisted() bool {
	return !d.id.IsZero()
}

// IsEqual compares two persisted dishes by identifier.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.IsPersisted() && d.id.IsEqual(other.id)
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

// Description returns the optional description, or an empty string.
func (d *Dish) Description() string {
	return d.description
}

func (d *Dish) Price() kernel.Price {
	return d.price
}

func (d *Dish) Category() string {
	return d.category
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, MaxDescriptionLength)
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	d.price = price
	return nil
}

func (d *Dish) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return ErrCategoryIsRequired
	}
	if n := utf8.RuneCountInString(category); n > MaxCategoryLength {
		return errs.NewValueIsOutOfRangeError("category length", n, 1, MaxCategoryLength)
	}
	d.category = category
	return nil
}
