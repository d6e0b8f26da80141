package kernel

import "time"

// Removal is the embeddable soft-delete state shared by all aggregate roots.
// Aggregates are never physically deleted: removal stamps a timestamp that
// the persistence layer writes as an update, and default reads filter
// removed rows out.
//
// SoftDelete is idempotent: the first call stamps the timestamp, later calls
// leave it unchanged. Restore clears the stamp and is a no-op when the
// aggregate is not removed.
type Removal struct {
	deletedAt *time.Time
}

// RestoreRemoval reconstructs removal state from persistence.
func RestoreRemoval(deletedAt *time.Time) Removal {
	return Removal{deletedAt: deletedAt}
}

// SoftDelete marks the aggregate removed at the given instant.
// A second call keeps the original timestamp.
func (r *Removal) SoftDelete(now time.Time) {
	if r.deletedAt != nil {
		return
	}
	utc := now.UTC()
	r.deletedAt = &utc
}

// Restore clears the removal stamp. No-op when not removed.
func (r *Removal) Restore() {
	r.deletedAt = nil
}

// IsDeleted reports whether the aggregate is soft-deleted.
func (r Removal) IsDeleted() bool {
	return r.deletedAt != nil
}

// DeletedAt returns the removal timestamp, or nil when not removed.
func (r Removal) DeletedAt() *time.Time {
	return r.deletedAt
}
