// Package order provides domain entities and business logic for order management
// in the restaurant. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages the customer, the dish set, and the lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders start in Processing and reference between 1 and 50 existing dishes
//   - Status follows Processing -> Preparing -> Ready -> (Delivering ->) Completed
//   - Orders in Processing or Preparing may be cancelled; Completed and Cancelled are final
//   - Illegal transitions fail with errs.InvalidStateError naming the allowed next statuses
package order
