package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so an order moves
// through the kitchen and delivery workflow in one direction only.
//
// State transitions:
//
//	Processing ──> Preparing ──> Ready ──> Delivering ──> Completed
//	     │             │           │                         ▲
//	     │             │           └─────────────────────────┘
//	     └─────────────┴──> Cancelled
//
// Completed and Cancelled are final. The wire representation of every status
// is its Russian literal (see Literal); String returns the English name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status of every new order.
	Processing

	// Preparing indicates the kitchen is cooking the order.
	Preparing

	// Ready indicates the order is cooked and waits for pickup or delivery.
	Ready

	// Delivering indicates the order is on its way to the customer.
	Delivering

	// Completed indicates the order was handed over. This is a final state.
	Completed

	// Cancelled indicates the order was called off. This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their English names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Preparing:  "Preparing",
		Ready:      "Ready",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getStatusLiterals returns the wire literals of valid statuses.
func getStatusLiterals() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "в обработке",
		Preparing:  "готовится",
		Ready:      "готов",
		Delivering: "доставляется",
		Completed:  "завершен",
		Cancelled:  "отменен",
	}
}

// getTransitions is the transition table of the state machine.
// A status with an empty list is final.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no transitions
	return map[Status][]Status{
		Processing: {Preparing, Cancelled},
		Preparing:  {Ready, Cancelled},
		Ready:      {Delivering, Completed},
		Delivering: {Completed},
		Completed:  {},
		Cancelled:  {},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Processing, Preparing, Ready, Delivering, Completed, Cancelled}
}

// ParseStatus converts a wire literal ("готовится") or an English name
// ("PREPARING", case-insensitive) to a Status.
//
// Example:
//
//	s, err := order.ParseStatus("готов")
//	// s == order.Ready
func ParseStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)
	for _, s := range Statuses() {
		if trimmed == s.Literal() || strings.EqualFold(trimmed, s.String()) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is one of the six lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusLiterals()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the English name of the status, or "Unknown" for invalid values.
//
// Example:
//
//	fmt.Println(order.Status()) // Output: "Preparing"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Literal returns the wire literal of the status as exposed by the API,
// or an empty string for invalid values.
func (s Status) Literal() string {
	return getStatusLiterals()[s]
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The result is empty for final and invalid statuses.
func (s Status) AllowedTransitions() []Status {
	allowed := getTransitions()[s]
	result := make([]Status, len(allowed))
	copy(result, allowed)
	return result
}

// CanTransitionTo reports whether the state machine allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	return from.CanTransitionTo(to)
}

// IsTerminal reports whether s is a final status with no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}

// CanBeCancelled reports whether an order in status s may still be cancelled.
// Only orders the kitchen has not finished (Processing, Preparing) qualify.
func (s Status) CanBeCancelled() bool {
	return s == Processing || s == Preparing
}

// TransitionTo validates a move to target and returns the new status.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - a ValueIsInvalidError when target is not a valid status
//   - an InvalidStateError listing the allowed statuses otherwise; the list is
//     empty when s is final
//
// Example:
//
//	next, err := order.Ready.TransitionTo(order.Preparing)
//	// err: state is invalid: from status 'готов' can only transition to: доставляется, завершен
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateError("status", s.Literal(), literals(s.AllowedTransitions()))
	}

	return target, nil
}

func literals(statuses []Status) []string {
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, s.Literal())
	}
	return result
}
