package order

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when using an improperly initialized Task.
var ErrTaskIsNotConstructed = errors.New("Task must be created via the owning ShootOrder")

// Task is a single unit of shoot work owned by exactly one ShootOrder.
// Tasks are created, mutated and removed only through the owning aggregate;
// their status follows the TaskStatus machine independently of the order's
// own status.
//
// Invariants:
//   - types is a non-empty valid set of shoot kinds
//   - price, when present, is a positive amount in the order's currency
//     minor units
type Task struct {
	// id uniquely identifies the task within the system
	id kernel.UUID
	// types is the combinable set of work kinds this task covers
	types TaskTypes
	// status is the task's position in its lifecycle
	status TaskStatus
	// notes carries free-form instructions from the agency
	notes string
	// priceCents is the optional agreed price in currency minor units
	priceCents *int64

	guard guard.ConstructorGuard
}

// newTask constructs a pending task. Only the owning order calls this.
func newTask(id kernel.UUID, types TaskTypes, notes string, priceCents *int64) (*Task, error) {
	task := &Task{
		status: TaskPending,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		task.setID(id),
		task.setTypes(types),
		task.setPrice(priceCents),
	); err != nil {
		return nil, err
	}

	return task, nil
}

// RestoreTask reconstructs a task from persistence, bypassing transition
// rules but re-validating every value.
func RestoreTask(id kernel.UUID, types TaskTypes, status TaskStatus, notes string, priceCents *int64) (*Task, error) {
	task := &Task{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		task.setID(id),
		task.setTypes(types),
		task.setPrice(priceCents),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	task.status = status
	return task, nil
}

// Validate ensures the Task was created through the owning aggregate.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID { return t.id }

// Types returns the set of work kinds the task covers.
func (t *Task) Types() TaskTypes { return t.types }

// Status returns the task's current lifecycle status.
func (t *Task) Status() TaskStatus { return t.status }

// Notes returns the agency's free-form instructions.
func (t *Task) Notes() string { return t.notes }

// PriceCents returns the optional agreed price in minor units, nil when unpriced.
func (t *Task) PriceCents() *int64 { return t.priceCents }

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// advance moves the task one step along its happy path.
func (t *Task) advance(target TaskStatus) error {
	newStatus, err := t.status.Advance(target)
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// cancel moves the task to TaskCancelled.
func (t *Task) cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setTypes(types TaskTypes) error {
	if err := types.Validate(); err != nil {
		return err
	}
	t.types = types
	return nil
}

func (t *Task) setPrice(priceCents *int64) error {
	if priceCents != nil && *priceCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", *priceCents))
	}
	t.priceCents = priceCents
	return nil
}
