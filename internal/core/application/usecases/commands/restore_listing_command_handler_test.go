package commands_test

import (
	"testing"
	"time"

	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func removedListing(t *testing.T) *listing.Listing {
	t.Helper()
	aggregate, err := listing.NewListing(
		kernel.NewUUID(), kernel.NewUUID(),
		"Garden Terrace 7", "Courtyard apartment near the light rail.", nil,
		listing.ForRent, listing.Apartment, listingAddress(t),
	)
	require.NoError(t, err)
	aggregate.SoftDelete(time.Now().UTC())
	return aggregate
}

func TestRestoreListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := removedListing(t)
	cmd, err := commands.NewRestoreListingCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("GetIncludingDeleted", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, aggregate.IsDeleted())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestoreListingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	listingID := kernel.NewUUID()
	cmd, err := commands.NewRestoreListingCommand(listingID)
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("GetIncludingDeleted", mock.Anything, listingID).
			Return(nil, errs.NewObjectNotFoundError("listingId", listingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
