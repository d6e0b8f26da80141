package order_test

import (
	"strings"
	"testing"
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(t *testing.T) *order.ShootOrder {
	t.Helper()
	currency, err := kernel.NewCurrency("AUD")
	require.NoError(t, err)

	o, err := order.Place(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		currency)
	require.NoError(t, err)
	return o
}

func advanceTo(t *testing.T, o *order.ShootOrder, target order.Status) {
	t.Helper()
	chain := []order.Status{
		order.Accepted, order.Scheduled, order.InProgress,
		order.AwaitingDelivery, order.AwaitingConfirmation, order.Completed,
	}
	for _, next := range chain {
		require.NoError(t, o.Advance(next))
		if next == target {
			return
		}
	}
}

func TestPlace(t *testing.T) {
	currency, _ := kernel.NewCurrency("AUD")

	t.Run("creates order in Placed status with empty task list", func(t *testing.T) {
		id := kernel.NewUUID()
		agency := kernel.NewUUID()

		o, err := order.Place(id, agency, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), currency)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.AgencyID().IsEqual(agency))
		assert.Equal(t, order.Placed, o.Status())
		assert.Empty(t, o.Tasks())
		assert.Nil(t, o.Photographer())
		assert.Empty(t, o.CancellationReason())
		assert.False(t, o.IsDeleted())
	})

	t.Run("fails with any empty identifier", func(t *testing.T) {
		var empty kernel.UUID
		valid := kernel.NewUUID()

		cases := []struct {
			name string
			ids  [5]kernel.UUID
		}{
			{"empty order id", [5]kernel.UUID{empty, valid, valid, valid, valid}},
			{"empty agency id", [5]kernel.UUID{valid, empty, valid, valid, valid}},
			{"empty studio id", [5]kernel.UUID{valid, valid, empty, valid, valid}},
			{"empty listing id", [5]kernel.UUID{valid, valid, valid, empty, valid}},
			{"empty creator id", [5]kernel.UUID{valid, valid, valid, valid, empty}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.Place(tc.ids[0], tc.ids[1], tc.ids[2], tc.ids[3], tc.ids[4], currency)

				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})

	t.Run("fails with unconstructed currency", func(t *testing.T) {
		var badCurrency kernel.Currency

		o, err := order.Place(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), badCurrency)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestShootOrder_Advance(t *testing.T) {
	t.Run("walks the full happy path", func(t *testing.T) {
		o := validOrder(t)

		advanceTo(t, o, order.Completed)

		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		o := validOrder(t)

		err := o.Advance(order.InProgress)

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Equal(t, order.Placed, o.Status(), "status must be unchanged on failure")
	})
}

func TestShootOrder_Cancel(t *testing.T) {
	t.Run("cancels mid-flight order and stores reason", func(t *testing.T) {
		o := validOrder(t)
		advanceTo(t, o, order.Scheduled)

		err := o.Cancel("client request")

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "client request", o.CancellationReason())
	})

	t.Run("rejects cancelling a Completed order", func(t *testing.T) {
		o := validOrder(t)
		advanceTo(t, o, order.Completed)

		err := o.Cancel("too late")

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Cancel("first"))

		err := o.Cancel("second")

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Equal(t, "first", o.CancellationReason(), "reason must not be overwritten")
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		o := validOrder(t)

		require.ErrorIs(t, o.Cancel(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects reason over 500 characters", func(t *testing.T) {
		o := validOrder(t)

		err := o.Cancel(strings.Repeat("x", 501))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestShootOrder_Photographer(t *testing.T) {
	t.Run("assigns and unassigns while active", func(t *testing.T) {
		o := validOrder(t)
		staff := kernel.NewUUID()

		require.NoError(t, o.AssignPhotographer(staff))
		require.NotNil(t, o.Photographer())
		assert.True(t, o.Photographer().IsEqual(staff))
		assert.Equal(t, order.Placed, o.Status(), "assignment implies no status change")

		require.NoError(t, o.UnassignPhotographer())
		assert.Nil(t, o.Photographer())
	})

	t.Run("rejects assignment on terminal order", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Cancel("done with it"))

		err := o.AssignPhotographer(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("rejects unassignment on terminal order", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.AssignPhotographer(kernel.NewUUID()))
		advanceTo(t, o, order.Completed)

		err := o.UnassignPhotographer()

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.NotNil(t, o.Photographer(), "assignment survives the failed call")
	})

	t.Run("rejects invalid staff id", func(t *testing.T) {
		o := validOrder(t)
		var empty kernel.UUID

		require.Error(t, o.AssignPhotographer(empty))
	})
}

func TestShootOrder_Tasks(t *testing.T) {
	price := int64(20000)

	t.Run("adds pending task without changing order status", func(t *testing.T) {
		o := validOrder(t)

		task, err := o.AddTask(kernel.NewUUID(), order.TaskPhotography, "twilight shots", &price)

		require.NoError(t, err)
		require.NoError(t, task.Validate())
		assert.Equal(t, order.TaskPending, task.Status())
		assert.Equal(t, "twilight shots", task.Notes())
		assert.Equal(t, price, *task.PriceCents())
		assert.Equal(t, order.Placed, o.Status())
		assert.Len(t, o.Tasks(), 1)
	})

	t.Run("rejects empty type set", func(t *testing.T) {
		o := validOrder(t)

		_, err := o.AddTask(kernel.NewUUID(), order.TaskTypes(0), "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, o.Tasks())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		o := validOrder(t)
		zero := int64(0)

		_, err := o.AddTask(kernel.NewUUID(), order.TaskVideo, "", &zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects adding to a terminal order", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Cancel("no longer needed"))

		_, err := o.AddTask(kernel.NewUUID(), order.TaskPhotography, "", nil)

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("advances task independently of order", func(t *testing.T) {
		o := validOrder(t)
		taskID := kernel.NewUUID()
		_, err := o.AddTask(taskID, order.TaskFloorplan, "", nil)
		require.NoError(t, err)

		require.NoError(t, o.AdvanceTask(taskID, order.TaskScheduled))
		require.NoError(t, o.AdvanceTask(taskID, order.TaskInProgress))
		require.NoError(t, o.AdvanceTask(taskID, order.TaskDone))

		assert.Equal(t, order.TaskDone, o.Tasks()[0].Status())
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("removes task by id", func(t *testing.T) {
		o := validOrder(t)
		keep := kernel.NewUUID()
		drop := kernel.NewUUID()
		_, err := o.AddTask(keep, order.TaskPhotography, "", nil)
		require.NoError(t, err)
		_, err = o.AddTask(drop, order.TaskDrone, "", nil)
		require.NoError(t, err)

		require.NoError(t, o.RemoveTask(drop))

		tasks := o.Tasks()
		require.Len(t, tasks, 1)
		assert.True(t, tasks[0].ID().IsEqual(keep))
	})

	t.Run("unknown task id fails", func(t *testing.T) {
		o := validOrder(t)

		require.ErrorIs(t, o.RemoveTask(kernel.NewUUID()), order.ErrTaskNotFound)
		require.ErrorIs(t, o.CancelTask(kernel.NewUUID()), order.ErrTaskNotFound)
	})
}

func TestShootOrder_SoftDelete(t *testing.T) {
	t.Run("soft delete and restore through the aggregate", func(t *testing.T) {
		o := validOrder(t)
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		o.SoftDelete(now)
		require.True(t, o.IsDeleted())
		assert.Equal(t, now, *o.DeletedAt())

		o.SoftDelete(now.Add(time.Hour))
		assert.Equal(t, now, *o.DeletedAt(), "repeat delete keeps the first stamp")

		o.Restore()
		assert.False(t, o.IsDeleted())
	})
}

// Covers the full scenario: place, assign, add task, cancel. The
// photographer stays assigned and the task keeps its own status after
// cancellation, because unassignment and task cancellation are separate
// explicit operations.
func TestShootOrder_CancellationScenario(t *testing.T) {
	currency, err := kernel.NewCurrency("AUD")
	require.NoError(t, err)
	agency, studio, listing := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	photographer := kernel.NewUUID()
	price := int64(200)

	o, err := order.Place(kernel.NewUUID(), agency, studio, listing, kernel.NewUUID(), currency)
	require.NoError(t, err)

	require.NoError(t, o.AssignPhotographer(photographer))

	taskID := kernel.NewUUID()
	_, err = o.AddTask(taskID, order.TaskPhotography, "", &price)
	require.NoError(t, err)

	require.NoError(t, o.Cancel("client request"))

	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, "client request", o.CancellationReason())
	require.NotNil(t, o.Photographer())
	assert.True(t, o.Photographer().IsEqual(photographer))

	tasks := o.Tasks()
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Types().Contains(order.TaskPhotography))
	assert.Equal(t, order.TaskPending, tasks[0].Status(), "task status untouched by order cancellation")
}

func TestRestoreShootOrder(t *testing.T) {
	currency, _ := kernel.NewCurrency("EUR")

	t.Run("reconstructs a cancelled order", func(t *testing.T) {
		id := kernel.NewUUID()
		staff := kernel.NewUUID()
		task, err := order.RestoreTask(kernel.NewUUID(), order.TaskVideo, order.TaskDone, "edit", nil)
		require.NoError(t, err)

		o, err := order.RestoreShootOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			currency, order.Cancelled, &staff, "client request",
			[]*order.Task{task}, kernel.Removal{})

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "client request", o.CancellationReason())
		assert.Len(t, o.Tasks(), 1)
	})

	t.Run("rejects reason on a non-cancelled order", func(t *testing.T) {
		_, err := order.RestoreShootOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			currency, order.Placed, nil, "should not be here", nil, kernel.Removal{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreShootOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			currency, order.Unknown, nil, "", nil, kernel.Removal{})

		require.Error(t, err)
	})
}
