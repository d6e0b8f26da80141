package queries_test

import (
	"testing"

	"shootdesk/internal/core/application/usecases/queries"
	"shootdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetListingsQuery_Valid(t *testing.T) {
	agencyID := kernel.NewUUID()

	query, err := queries.NewGetListingsQuery(agencyID, true)
	require.NoError(t, err)

	assert.NoError(t, query.Validate())
	assert.True(t, query.AgencyID().IsEqual(agencyID))
	assert.True(t, query.IncludeDeleted())
}

func TestNewGetListingsQuery_InvalidAgencyID(t *testing.T) {
	_, err := queries.NewGetListingsQuery(kernel.UUID{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetListingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetListingsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetListingsQueryIsNotConstructed)
}
