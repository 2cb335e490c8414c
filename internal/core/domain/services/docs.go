// Package services provides domain services that orchestrate business operations
// across the dish and order aggregates.
//
// The package includes:
//   - OrderPlacer: builds a new order after checking every requested dish exists
package services
