package kernel_test

import (
	"testing"

	"shootdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugFrom(t *testing.T) {
	t.Run("normalizes mixed punctuation and whitespace", func(t *testing.T) {
		s, err := kernel.SlugFrom("  Ocean View Villa #3!! ")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "ocean-view-villa-3", s.String())
	})

	t.Run("normalization table", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{"Sunset Studios", "sunset-studios"},
			{"A&B   Media", "a-b-media"},
			{"--already--slugged--", "already-slugged"},
			{"UPPER", "upper"},
			{"agency.no+1", "agency-no-1"},
			{"42", "42"},
		}

		for _, tc := range cases {
			s, err := kernel.SlugFrom(tc.in)

			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, s.String(), "input %q", tc.in)
		}
	})

	t.Run("rejects input with no alphanumeric characters", func(t *testing.T) {
		for _, in := range []string{"", "   ", "!!!", "---", "#&*@ !?"} {
			_, err := kernel.SlugFrom(in)

			require.ErrorIs(t, err, kernel.ErrSlugIsEmpty, "input %q", in)
		}
	})
}

func TestSlug_IsEqual(t *testing.T) {
	t.Run("different spellings of same slug compare equal", func(t *testing.T) {
		a, err := kernel.SlugFrom("Ocean View")
		require.NoError(t, err)
		b, err := kernel.SlugFrom("ocean---view")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})
}

func TestSlug_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var s kernel.Slug

		require.ErrorIs(t, s.Validate(), kernel.ErrSlugIsNotConstructed)
	})
}
