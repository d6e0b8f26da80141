package order

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a shoot order.
// It implements a state machine with defined transitions so orders follow
// the agreed fulfillment workflow between agency and studio.
//
// State transitions:
//
//	Placed ──> Accepted ──> Scheduled ──> InProgress ──> AwaitingDelivery ──> AwaitingConfirmation ──> Completed
//	   │           │            │             │                 │                      │
//	   └───────────┴────────────┴─────────────┴─────────────────┴──────────────────────┴──> Cancelled
//
// The happy path is strictly monotonic: each transition moves to the next
// state only. Cancelled is reachable from every non-terminal state.
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an agency places the order.
	Placed

	// Accepted indicates the studio has accepted the order.
	Accepted

	// Scheduled indicates shoot dates have been agreed.
	Scheduled

	// InProgress indicates the shoot is underway.
	InProgress

	// AwaitingDelivery indicates the shoot finished and media delivery is pending.
	AwaitingDelivery

	// AwaitingConfirmation indicates media was delivered and awaits agency sign-off.
	AwaitingConfirmation

	// Completed is the terminal success state.
	Completed

	// Cancelled is the terminal failure state, reachable from any
	// non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Placed:               "Placed",
		Accepted:             "Accepted",
		Scheduled:            "Scheduled",
		InProgress:           "InProgress",
		AwaitingDelivery:     "AwaitingDelivery",
		AwaitingConfirmation: "AwaitingConfirmation",
		Completed:            "Completed",
		Cancelled:            "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:               "Placed",
		Accepted:             "Accepted",
		Scheduled:            "Scheduled",
		InProgress:           "InProgress",
		AwaitingDelivery:     "AwaitingDelivery",
		AwaitingConfirmation: "AwaitingConfirmation",
		Completed:            "Completed",
		Cancelled:            "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid. Used to vet Status
// values arriving from external sources such as the database or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// next returns the happy-path successor of the status, or Unknown when the
// status is terminal or invalid.
func (s Status) next() Status {
	switch s {
	case Placed:
		return Accepted
	case Accepted:
		return Scheduled
	case Scheduled:
		return InProgress
	case InProgress:
		return AwaitingDelivery
	case AwaitingDelivery:
		return AwaitingConfirmation
	case AwaitingConfirmation:
		return Completed
	default:
		return Unknown
	}
}

// Advance transitions the status one step along the happy path.
//
// Valid transitions are exactly Placed -> Accepted -> Scheduled ->
// InProgress -> AwaitingDelivery -> AwaitingConfirmation -> Completed.
// Skipping a state, moving backwards, or advancing a terminal status
// fails with InvalidOperationError.
//
// Returns:
//   - (target, nil) on a valid single-step transition
//   - (0, error) otherwise
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s.next() != target {
		return 0, errs.NewInvalidOperationErrorWithCause("advance",
			fmt.Errorf("%s cannot advance to %s", s.String(), target.String()))
	}
	return target, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from every non-terminal state. Cancelling a Completed or
// already-Cancelled order fails with InvalidOperationError: repeat
// cancellation is a caller error, not an idempotent no-op.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidOperationErrorWithCause("cancel",
			fmt.Errorf("%s is a terminal status", s.String()))
	}
	return Cancelled, nil
}
