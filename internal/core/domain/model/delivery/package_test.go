package delivery_test

import (
	"testing"
	"time"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftPackage(t *testing.T, expiresAt *time.Time) *delivery.Package {
	t.Helper()
	pkg, err := delivery.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Ocean View Villa — final set", false, expiresAt)
	require.NoError(t, err)
	return pkg
}

func ptrInt(v int) *int { return &v }

func TestNewPackage(t *testing.T) {
	t.Run("creates draft package with no items or accesses", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		require.NoError(t, pkg.Validate())
		assert.Equal(t, delivery.Draft, pkg.Status())
		assert.Empty(t, pkg.Items())
		assert.Empty(t, pkg.Accesses())
		assert.Nil(t, pkg.ExpiresAt())
	})

	t.Run("normalizes expiry to UTC", func(t *testing.T) {
		offset := time.FixedZone("UTC+10", 10*3600)
		local := time.Date(2025, 7, 1, 20, 0, 0, 0, offset)

		pkg := draftPackage(t, &local)

		require.NotNil(t, pkg.ExpiresAt())
		assert.Equal(t, time.UTC, pkg.ExpiresAt().Location())
		assert.True(t, pkg.ExpiresAt().Equal(local))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := delivery.NewPackage(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", false, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		var empty kernel.UUID

		_, err := delivery.NewPackage(kernel.NewUUID(), empty, kernel.NewUUID(), "set", false, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPackage_Items(t *testing.T) {
	t.Run("adds items while draft", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		item, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "web-1920", 0)

		require.NoError(t, err)
		assert.Equal(t, "web-1920", item.VariantName())
		assert.Len(t, pkg.Items(), 1)
	})

	t.Run("rejects duplicate sort order", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		_, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "web-1920", 0)
		require.NoError(t, err)

		_, err = pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "print-4k", 0)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects item mutation once published", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		require.NoError(t, pkg.Publish())

		_, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "web-1920", 0)

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("reorders items and rewrites sort order", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		first, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "a", 0)
		require.NoError(t, err)
		second, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "b", 1)
		require.NoError(t, err)

		require.NoError(t, pkg.ReorderItems([]kernel.UUID{second.ID(), first.ID()}))

		items := pkg.Items()
		assert.Equal(t, "b", items[0].VariantName())
		assert.Equal(t, 0, items[0].SortOrder())
		assert.Equal(t, "a", items[1].VariantName())
		assert.Equal(t, 1, items[1].SortOrder())
	})

	t.Run("reorder rejects foreign or duplicate ids", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		item, err := pkg.AddItem(kernel.NewUUID(), kernel.NewUUID(), "a", 0)
		require.NoError(t, err)

		require.Error(t, pkg.ReorderItems([]kernel.UUID{kernel.NewUUID()}))
		require.Error(t, pkg.ReorderItems([]kernel.UUID{item.ID(), item.ID()}))
	})
}

func TestPackage_Accesses(t *testing.T) {
	t.Run("grants private access with recipient", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		access, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessPrivate,
			"agent@agency.example", "Alex Agent", ptrInt(3), "")

		require.NoError(t, err)
		assert.Equal(t, delivery.AccessPrivate, access.Type())
		assert.Equal(t, "agent@agency.example", access.RecipientEmail())
		assert.Equal(t, 3, *access.MaxDownloads())
		assert.Zero(t, access.Downloads())
	})

	t.Run("private access requires recipient email", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		_, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessPrivate, "", "", nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive download quota", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		_, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessPublic, "", "", ptrInt(0), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects granting access once published", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		require.NoError(t, pkg.Publish())

		_, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessPublic, "", "", nil, "")

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})
}

func TestPackage_Lifecycle(t *testing.T) {
	t.Run("publish then revoke", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		require.NoError(t, pkg.Publish())
		assert.Equal(t, delivery.Published, pkg.Status())

		require.NoError(t, pkg.Revoke())
		assert.Equal(t, delivery.Revoked, pkg.Status())
	})

	t.Run("publish is valid only from draft", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		require.NoError(t, pkg.Publish())

		require.ErrorIs(t, pkg.Publish(), errs.ErrInvalidOperation)
	})

	t.Run("revoke is valid only from published", func(t *testing.T) {
		pkg := draftPackage(t, nil)

		require.ErrorIs(t, pkg.Revoke(), errs.ErrInvalidOperation)
	})
}

func TestPackage_Expire(t *testing.T) {
	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("expires published package past its deadline", func(t *testing.T) {
		pkg := draftPackage(t, &deadline)
		require.NoError(t, pkg.Publish())

		require.True(t, pkg.IsExpirable(deadline.Add(time.Minute)))
		require.NoError(t, pkg.Expire(deadline.Add(time.Minute)))
		assert.Equal(t, delivery.Expired, pkg.Status())
	})

	t.Run("deadline boundary counts as elapsed", func(t *testing.T) {
		pkg := draftPackage(t, &deadline)
		require.NoError(t, pkg.Publish())

		require.NoError(t, pkg.Expire(deadline))
	})

	t.Run("rejects expiry before the deadline", func(t *testing.T) {
		pkg := draftPackage(t, &deadline)
		require.NoError(t, pkg.Publish())

		err := pkg.Expire(deadline.Add(-time.Second))

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.Equal(t, delivery.Published, pkg.Status())
	})

	t.Run("rejects expiry of a draft package", func(t *testing.T) {
		pkg := draftPackage(t, &deadline)

		require.ErrorIs(t, pkg.Expire(deadline.Add(time.Hour)), errs.ErrInvalidOperation)
		assert.False(t, pkg.IsExpirable(deadline.Add(time.Hour)))
	})

	t.Run("rejects expiry without a deadline", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		require.NoError(t, pkg.Publish())

		require.ErrorIs(t, pkg.Expire(time.Now()), errs.ErrInvalidOperation)
	})
}

func TestPackage_RegisterDownload(t *testing.T) {
	grantAndPublish := func(t *testing.T, maxDownloads *int) (*delivery.Package, kernel.UUID) {
		t.Helper()
		pkg := draftPackage(t, nil)
		access, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessToken, "", "", maxDownloads, "")
		require.NoError(t, err)
		require.NoError(t, pkg.Publish())
		return pkg, access.ID()
	}

	t.Run("counts downloads up to the quota then fails", func(t *testing.T) {
		pkg, accessID := grantAndPublish(t, ptrInt(2))

		require.NoError(t, pkg.RegisterDownload(accessID))
		require.NoError(t, pkg.RegisterDownload(accessID))

		err := pkg.RegisterDownload(accessID)

		require.ErrorIs(t, err, errs.ErrQuotaExceeded)
		assert.Equal(t, 2, pkg.Accesses()[0].Downloads(), "counter must not overflow")
	})

	t.Run("unlimited when no quota is set", func(t *testing.T) {
		pkg, accessID := grantAndPublish(t, nil)

		for range 10 {
			require.NoError(t, pkg.RegisterDownload(accessID))
		}
		assert.Equal(t, 10, pkg.Accesses()[0].Downloads())
	})

	t.Run("rejects downloads on a draft package", func(t *testing.T) {
		pkg := draftPackage(t, nil)
		access, err := pkg.GrantAccess(kernel.NewUUID(), delivery.AccessPublic, "", "", nil, "")
		require.NoError(t, err)

		require.ErrorIs(t, pkg.RegisterDownload(access.ID()), errs.ErrInvalidOperation)
	})

	t.Run("unknown access id fails", func(t *testing.T) {
		pkg, _ := grantAndPublish(t, nil)

		require.ErrorIs(t, pkg.RegisterDownload(kernel.NewUUID()), delivery.ErrAccessNotFound)
	})
}

func TestRestoreAccess(t *testing.T) {
	t.Run("reconstructs consumed quota", func(t *testing.T) {
		access, err := delivery.RestoreAccess(kernel.NewUUID(), delivery.AccessPrivate,
			"agent@agency.example", "Alex", ptrInt(5), 5, "hash")

		require.NoError(t, err)
		assert.Equal(t, 5, access.Downloads())
		assert.Equal(t, "hash", access.PasswordHash())
	})

	t.Run("rejects downloads beyond the quota", func(t *testing.T) {
		_, err := delivery.RestoreAccess(kernel.NewUUID(), delivery.AccessToken, "", "", ptrInt(2), 3, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative downloads", func(t *testing.T) {
		_, err := delivery.RestoreAccess(kernel.NewUUID(), delivery.AccessToken, "", "", nil, -1, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
