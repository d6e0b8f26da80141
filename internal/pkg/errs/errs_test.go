package errs_test

import (
	"errors"
	"testing"

	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("listingId", "123")

		assert.Equal(t, "listingId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("listingId", "123", cause)

		assert.Equal(t, "listingId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: listingId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("currency")

		assert.Equal(t, "currency", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: currency", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("currency", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: currency (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("title")

		assert.Equal(t, "title", err.ParamName)
		assert.Equal(t, "value is required: title", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("title", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: title (cause: missing required field)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("slug", "ocean-view-villa")

		assert.Equal(t, "slug", err.ParamName)
		assert.Equal(t, "ocean-view-villa", err.Value)
		assert.Equal(t, "conflict: slug ocean-view-villa", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique index violation")
		err := errs.NewConflictErrorWithCause("checksum", "abc123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: checksum abc123 (cause: unique index violation)", err.Error())
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("shootOrder", "42")

	assert.Equal(t, "shootOrder", err.ParamName)
	assert.Equal(t, "42", err.ID)
	assert.Equal(t, "concurrency conflict: shootOrder 42", err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestQuotaExceededError(t *testing.T) {
	err := errs.NewQuotaExceededError("downloads", 5)

	assert.Equal(t, "downloads", err.ParamName)
	assert.Equal(t, 5, err.Limit)
	assert.Equal(t, "quota exceeded: downloads, limit is 5", err.Error())
	assert.Equal(t, errs.ErrQuotaExceeded, err.Unwrap())
}

func TestInvalidOperationError(t *testing.T) {
	t.Run("NewInvalidOperationError", func(t *testing.T) {
		err := errs.NewInvalidOperationError("cancel")

		assert.Equal(t, "cancel", err.Operation)
		assert.Equal(t, "operation is invalid: cancel", err.Error())
		assert.Equal(t, errs.ErrInvalidOperation, err.Unwrap())
	})

	t.Run("NewInvalidOperationErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is already terminal")
		err := errs.NewInvalidOperationErrorWithCause("cancel", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation is invalid: cancel (cause: order is already terminal)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
		assert.Equal(t, "quota exceeded", errs.ErrQuotaExceeded.Error())
		assert.Equal(t, "operation is invalid", errs.ErrInvalidOperation.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("listingId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("currency"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("slug", "x"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewConcurrencyConflictError("shootOrder", "42"), errs.ErrConcurrencyConflict)
		require.ErrorIs(t, errs.NewQuotaExceededError("downloads", 5), errs.ErrQuotaExceeded)
		require.ErrorIs(t, errs.NewInvalidOperationError("cancel"), errs.ErrInvalidOperation)
	})
}
