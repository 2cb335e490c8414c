// Package dish provides the Dish aggregate: a menu item that orders reference.
//
// Key business rules:
//   - A dish has a required name of at most MaxNameLength characters
//   - The description is optional and limited to MaxDescriptionLength characters
//   - The price is a kernel.Price, so it is always positive and at most kernel.PriceMax
//   - The category is required free text
//   - Dishes are never modified after creation; they can only be created and deleted
//
// New dishes carry the zero kernel.ID until storage assigns one; RestoreDish
// rebuilds a persisted dish with its identifier.
package dish
