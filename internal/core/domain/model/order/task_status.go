package order

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// TaskStatus represents the lifecycle state of a single shoot task.
//
// State transitions:
//
//	Pending ──> TaskScheduled ──> TaskInProgress ──> Done
//	   │              │                  │
//	   └──────────────┴──────────────────┴──> TaskCancelled
//
// Done and TaskCancelled are terminal. Task transitions are independent of
// the owning order's status: cancelling an order leaves its tasks untouched.
type TaskStatus int

const (
	// TaskUnknown represents an invalid or undefined task status.
	TaskUnknown TaskStatus = iota

	// TaskPending is the initial status of a freshly added task.
	TaskPending

	// TaskScheduled indicates the task has an agreed shoot slot.
	TaskScheduled

	// TaskInProgress indicates work on the task has started.
	TaskInProgress

	// TaskDone is the terminal success state.
	TaskDone

	// TaskCancelled is the terminal failure state.
	TaskCancelled
)

func getTaskStatusStrings() map[TaskStatus]string {
	return map[TaskStatus]string{
		TaskUnknown:    "Unknown",
		TaskPending:    "Pending",
		TaskScheduled:  "Scheduled",
		TaskInProgress: "InProgress",
		TaskDone:       "Done",
		TaskCancelled:  "Cancelled",
	}
}

// Validate checks if the TaskStatus value is valid.
func (s TaskStatus) Validate() error {
	if s <= TaskUnknown || s > TaskCancelled {
		return errs.NewValueIsInvalidErrorWithCause("task status is invalid",
			fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the human-readable name of the task status.
func (s TaskStatus) String() string {
	if str, ok := getTaskStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskDone || s == TaskCancelled
}

func (s TaskStatus) next() TaskStatus {
	switch s {
	case TaskPending:
		return TaskScheduled
	case TaskScheduled:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	default:
		return TaskUnknown
	}
}

// Advance transitions the task status one step along the happy path.
// Skipping a state, moving backwards, or advancing a terminal status fails
// with InvalidOperationError.
func (s TaskStatus) Advance(target TaskStatus) (TaskStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s.next() != target {
		return 0, errs.NewInvalidOperationErrorWithCause("advance task",
			fmt.Errorf("%s cannot advance to %s", s.String(), target.String()))
	}
	return target, nil
}

// Cancel transitions the task status to TaskCancelled.
// Valid from every non-terminal state.
func (s TaskStatus) Cancel() (TaskStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidOperationErrorWithCause("cancel task",
			fmt.Errorf("%s is a terminal task status", s.String()))
	}
	return TaskCancelled, nil
}
