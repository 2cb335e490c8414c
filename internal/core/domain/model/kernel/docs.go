// Package kernel provides core domain primitives shared by the dish and order aggregates.
//
// The package includes:
//   - ID: the storage-assigned surrogate identifier of an entity
//   - Price: a positive monetary amount rounded to cents
//
// Both are immutable value objects whose zero values fail validation, so an
// aggregate can always tell an unset field from a real one.
package kernel
