package kernel

import (
	"strings"
	"unicode"

	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrSlugIsNotConstructed is returned when attempting to use an improperly
// initialized Slug. Slugs must be created via SlugFrom.
var ErrSlugIsNotConstructed = errs.NewValueIsRequiredError(
	"slug must be created via SlugFrom constructor")

// ErrSlugIsEmpty is returned when the input normalizes to an empty slug,
// i.e. it contained no alphanumeric characters at all.
var ErrSlugIsEmpty = errs.NewValueIsInvalidError("slug normalizes to empty")

// Slug is a canonical, URL-safe natural key derived from arbitrary text.
// It is used to look up agencies and studios by a human-readable handle.
// Uniqueness across tenants is an application-service concern; the value
// object only guarantees canonical form: lowercase alphanumeric tokens
// joined by single hyphens.
//
// Example:
//
//	s, _ := kernel.SlugFrom("  Ocean View Villa #3!! ")
//	s.String() // "ocean-view-villa-3"
type Slug struct {
	value string
	guard guard.ConstructorGuard
}

// SlugFrom normalizes raw text into a Slug: trim, lowercase, replace every
// non-alphanumeric rune with a space, split on whitespace, rejoin with
// hyphens. Fails with ErrSlugIsEmpty if nothing survives normalization.
func SlugFrom(raw string) (Slug, error) {
	normalized := normalizeSlug(raw)
	if normalized == "" {
		return Slug{}, ErrSlugIsEmpty
	}

	return Slug{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Slug was properly constructed via SlugFrom.
func (s Slug) Validate() error {
	return s.guard.Validate(ErrSlugIsNotConstructed)
}

// String returns the canonical slug text.
func (s Slug) String() string {
	return s.value
}

// IsEqual compares two slugs by canonical value.
func (s Slug) IsEqual(other Slug) bool {
	return s.value == other.value
}

func normalizeSlug(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Join(strings.Fields(mapped), "-")
}
