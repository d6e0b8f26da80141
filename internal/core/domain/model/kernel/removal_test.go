package kernel_test

import (
	"testing"
	"time"

	"shootdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoval_SoftDelete(t *testing.T) {
	t.Run("stamps deletion time once", func(t *testing.T) {
		var r kernel.Removal
		first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		r.SoftDelete(first)

		require.True(t, r.IsDeleted())
		require.NotNil(t, r.DeletedAt())
		assert.Equal(t, first, *r.DeletedAt())
	})

	t.Run("second call is idempotent", func(t *testing.T) {
		var r kernel.Removal
		first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		r.SoftDelete(first)
		r.SoftDelete(second)

		assert.Equal(t, first, *r.DeletedAt(), "timestamp must not move on repeat delete")
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		var r kernel.Removal
		offset := time.FixedZone("UTC+10", 10*3600)
		local := time.Date(2025, 3, 1, 20, 0, 0, 0, offset)

		r.SoftDelete(local)

		assert.Equal(t, time.UTC, r.DeletedAt().Location())
		assert.True(t, r.DeletedAt().Equal(local))
	})
}

func TestRemoval_Restore(t *testing.T) {
	t.Run("clears deletion stamp", func(t *testing.T) {
		var r kernel.Removal
		r.SoftDelete(time.Now())

		r.Restore()

		assert.False(t, r.IsDeleted())
		assert.Nil(t, r.DeletedAt())
	})

	t.Run("no-op when not deleted", func(t *testing.T) {
		var r kernel.Removal

		r.Restore()

		assert.False(t, r.IsDeleted())
	})
}

func TestRestoreRemoval(t *testing.T) {
	t.Run("reconstructs deleted state from persistence", func(t *testing.T) {
		at := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

		r := kernel.RestoreRemoval(&at)

		require.True(t, r.IsDeleted())
		assert.Equal(t, at, *r.DeletedAt())
	})

	t.Run("reconstructs live state", func(t *testing.T) {
		r := kernel.RestoreRemoval(nil)

		assert.False(t, r.IsDeleted())
	})
}
