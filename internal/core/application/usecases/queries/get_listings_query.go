package queries

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"

	"shootdesk/internal/pkg/guard"
)

var (
	ErrGetListingsQueryIsNotConstructed = errors.New(
		"GetListingsQuery must be created via NewGetListingsQuery constructor",
	)
)

// GetListingsQuery retrieves the listings of one agency. By default soft
// deleted listings are hidden; IncludeDeleted surfaces them for recovery
// flows, where an operator needs to see what can still be restored.
//
// Example:
//
//	query, err := NewGetListingsQuery(agencyID, false)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetListingsQueryHandler(db)
//
//	listings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get listings: %w", err)
//	}
type GetListingsQuery struct {
	agencyID       kernel.UUID
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetListingsQuery creates a query scoped to one agency. Set
// includeDeleted to surface soft deleted listings alongside live ones.
func NewGetListingsQuery(agencyID kernel.UUID, includeDeleted bool) (GetListingsQuery, error) {
	if err := agencyID.Validate(); err != nil {
		return GetListingsQuery{}, err
	}

	return GetListingsQuery{
		agencyID:       agencyID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// AgencyID returns the agency the query is scoped to.
func (q GetListingsQuery) AgencyID() kernel.UUID {
	return q.agencyID
}

// IncludeDeleted reports whether soft deleted listings are included.
func (q GetListingsQuery) IncludeDeleted() bool {
	return q.includeDeleted
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetListingsQueryIsNotConstructed if validation fails.
func (q GetListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetListingsQueryIsNotConstructed)
}

// GetListingsQueryResponse is one listing row. IsDeleted distinguishes
// recoverable listings when the query ran with IncludeDeleted.
type GetListingsQueryResponse struct {
	ID        kernel.UUID
	Slug      string
	Title     string
	Status    listing.Status
	IsDeleted bool
}
