package order

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// cancellationReasonMaxLen bounds the stored cancellation reason.
const cancellationReasonMaxLen = 500

// ErrShootOrderIsNotConstructed is returned when a ShootOrder instance was not
// created through the Place factory. This ensures all orders are properly validated.
var ErrShootOrderIsNotConstructed = errors.New("ShootOrder must be created via Place constructor")

// ErrTaskNotFound is returned when a task id does not belong to the order.
var ErrTaskNotFound = errors.New("task not found on order")

// ShootOrder represents a photography/videography order an agency places
// against a studio for a specific listing. It is the aggregate root that
// manages the order lifecycle from placement through fulfillment to
// completion, and owns the ordered collection of shoot tasks.
//
// ShootOrder follows these invariants:
//   - Agency, studio, listing and creator identifiers are valid UUIDs
//   - Status transitions are monotonic along the happy path, or move to
//     Cancelled from any non-terminal state
//   - CancellationReason is set only when the order is Cancelled
//   - A photographer may be assigned or unassigned only while the order is
//     not terminal; assignment never changes the status by itself
//   - Tasks are added, mutated and removed only through the aggregate
//
// No I/O occurs inside the aggregate: persistence timestamps and the row
// version are owned by the unit of work at commit time.
type ShootOrder struct {
	kernel.Removal

	// id is the unique identifier for the order
	id kernel.UUID
	// agencyID identifies the placing agency tenant
	agencyID kernel.UUID
	// studioID identifies the fulfilling studio tenant
	studioID kernel.UUID
	// listingID identifies the listing the media is shot for
	listingID kernel.UUID
	// createdBy identifies the agency user who placed the order
	createdBy kernel.UUID
	// currency prices all tasks on the order
	currency kernel.Currency
	// status is the order's position in its lifecycle
	status Status
	// photographerID is the assigned studio photographer (nil if unassigned)
	photographerID *kernel.UUID
	// cancellationReason is stored only when status is Cancelled
	cancellationReason string
	// tasks is the ordered collection of owned shoot tasks
	tasks []*Task

	guard guard.ConstructorGuard
}

// Place creates a new ShootOrder in Placed status. This is the only way to
// create a valid order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order
//   - agencyID, studioID, listingID, createdBy: Valid tenant/user identifiers
//   - currency: The currency pricing the order's tasks
//
// Returns:
//   - *ShootOrder: The placed order with an empty task list
//   - error: Validation error if any identifier or the currency is invalid
func Place(
	id, agencyID, studioID, listingID, createdBy kernel.UUID,
	currency kernel.Currency,
) (*ShootOrder, error) {
	o := &ShootOrder{
		status: Placed,
		tasks:  make([]*Task, 0),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setAgencyID(agencyID),
		o.setStudioID(studioID),
		o.setListingID(listingID),
		o.setCreatedBy(createdBy),
		o.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreShootOrder reconstructs an order from persistence, bypassing
// transition rules but re-validating every value and the status/photographer
// consistency.
func RestoreShootOrder(
	id, agencyID, studioID, listingID, createdBy kernel.UUID,
	currency kernel.Currency,
	status Status,
	photographerID *kernel.UUID,
	cancellationReason string,
	tasks []*Task,
	removal kernel.Removal,
) (*ShootOrder, error) {
	o := &ShootOrder{
		Removal: removal,
		tasks:   tasks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setAgencyID(agencyID),
		o.setStudioID(studioID),
		o.setListingID(listingID),
		o.setCreatedBy(createdBy),
		o.setCurrency(currency),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if photographerID != nil {
		if err := photographerID.Validate(); err != nil {
			return nil, err
		}
	}
	if cancellationReason != "" && status != Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("cancellationReason",
			fmt.Errorf("reason set while status is %s", status.String()))
	}
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.photographerID = photographerID
	o.cancellationReason = cancellationReason
	return o, nil
}

// Validate ensures the ShootOrder was created via Place or RestoreShootOrder.
func (o *ShootOrder) Validate() error {
	if o == nil {
		return ErrShootOrderIsNotConstructed
	}
	return o.guard.Validate(ErrShootOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *ShootOrder) IsEqual(other *ShootOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ShootOrder) ID() kernel.UUID { return o.id }

// AgencyID returns the placing agency's identifier.
func (o *ShootOrder) AgencyID() kernel.UUID { return o.agencyID }

// StudioID returns the fulfilling studio's identifier.
func (o *ShootOrder) StudioID() kernel.UUID { return o.studioID }

// ListingID returns the listing the order was placed for.
func (o *ShootOrder) ListingID() kernel.UUID { return o.listingID }

// CreatedBy returns the agency user who placed the order.
func (o *ShootOrder) CreatedBy() kernel.UUID { return o.createdBy }

// Currency returns the currency pricing the order's tasks.
func (o *ShootOrder) Currency() kernel.Currency { return o.currency }

// Status returns the order's current lifecycle status.
func (o *ShootOrder) Status() Status { return o.status }

// Photographer returns the assigned photographer's identifier, nil if unassigned.
func (o *ShootOrder) Photographer() *kernel.UUID { return o.photographerID }

// CancellationReason returns the stored reason, empty unless Cancelled.
func (o *ShootOrder) CancellationReason() string { return o.cancellationReason }

// Tasks returns a copy of the ordered task collection. Mutating the returned
// slice does not affect the aggregate.
func (o *ShootOrder) Tasks() []*Task {
	tasks := make([]*Task, len(o.tasks))
	copy(tasks, o.tasks)
	return tasks
}

// Advance moves the order one step along the happy path.
//
// Valid targets are exactly the successor of the current status:
// Placed -> Accepted -> Scheduled -> InProgress -> AwaitingDelivery ->
// AwaitingConfirmation -> Completed. Anything else fails with
// InvalidOperationError.
func (o *ShootOrder) Advance(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled, storing the reason.
//
// Business rules:
//   - The order must not already be terminal; cancelling a Completed or
//     Cancelled order fails with InvalidOperationError
//   - The reason is required and bounded to 500 characters
//
// Cancellation leaves the photographer assignment and every task's own
// status untouched: unassignment and task cancellation are separate,
// explicit calls.
func (o *ShootOrder) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	if len(reason) > cancellationReasonMaxLen {
		return errs.NewValueIsOutOfRangeError("cancellation reason", len(reason), 1, cancellationReasonMaxLen)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// AssignPhotographer assigns a studio photographer to the order.
// Permitted only while the order is not Completed or Cancelled.
// No status transition is implied: callers drive status separately.
func (o *ShootOrder) AssignPhotographer(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("assign photographer",
			fmt.Errorf("order is %s", o.status.String()))
	}

	o.photographerID = &staffID
	return nil
}

// UnassignPhotographer clears the photographer assignment.
// Permitted only while the order is not terminal.
func (o *ShootOrder) UnassignPhotographer() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("unassign photographer",
			fmt.Errorf("order is %s", o.status.String()))
	}

	o.photographerID = nil
	return nil
}

// AddTask appends a new pending task to the order.
//
// Parameters:
//   - taskID: Unique identifier for the task
//   - types: Non-empty set of shoot work kinds
//   - notes: Optional free-form instructions
//   - priceCents: Optional price in currency minor units, must be positive when set
//
// Adding a task never changes the order's status. Tasks cannot be added to
// a terminal order.
func (o *ShootOrder) AddTask(taskID kernel.UUID, types TaskTypes, notes string, priceCents *int64) (*Task, error) {
	if o.status.IsTerminal() {
		return nil, errs.NewInvalidOperationErrorWithCause("add task",
			fmt.Errorf("order is %s", o.status.String()))
	}

	task, err := newTask(taskID, types, notes, priceCents)
	if err != nil {
		return nil, err
	}

	o.tasks = append(o.tasks, task)
	return task, nil
}

// RemoveTask removes a task from the order by id.
// Removing a task does not by itself change the order's status.
func (o *ShootOrder) RemoveTask(taskID kernel.UUID) error {
	for i, task := range o.tasks {
		if task.id.IsEqual(taskID) {
			o.tasks = append(o.tasks[:i], o.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// AdvanceTask moves the identified task one step along its happy path.
func (o *ShootOrder) AdvanceTask(taskID kernel.UUID, target TaskStatus) error {
	task, err := o.taskByID(taskID)
	if err != nil {
		return err
	}
	return task.advance(target)
}

// CancelTask moves the identified task to TaskCancelled.
// Mutating a task does not by itself change the order's status.
func (o *ShootOrder) CancelTask(taskID kernel.UUID) error {
	task, err := o.taskByID(taskID)
	if err != nil {
		return err
	}
	return task.cancel()
}

func (o *ShootOrder) taskByID(taskID kernel.UUID) (*Task, error) {
	for _, task := range o.tasks {
		if task.id.IsEqual(taskID) {
			return task, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (o *ShootOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ShootOrder) setAgencyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agencyId", err)
	}
	o.agencyID = id
	return nil
}

func (o *ShootOrder) setStudioID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("studioId", err)
	}
	o.studioID = id
	return nil
}

func (o *ShootOrder) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("listingId", err)
	}
	o.listingID = id
	return nil
}

func (o *ShootOrder) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = id
	return nil
}

func (o *ShootOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}
