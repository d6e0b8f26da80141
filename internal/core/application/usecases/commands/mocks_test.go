package commands_test

import (
	"context"
	"errors"
	"time"

	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShootOrderRepository struct{ mock.Mock }

func (m *MockShootOrderRepository) Add(ctx context.Context, o *order.ShootOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockShootOrderRepository) Update(ctx context.Context, o *order.ShootOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockShootOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ShootOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ShootOrder), args.Error(1)
}
func (m *MockShootOrderRepository) GetAllActive(_ context.Context) ([]*order.ShootOrder, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) ShootOrderRepository() ports.ShootOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ShootOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryPackageRepository struct{ mock.Mock }

func (m *MockDeliveryPackageRepository) Add(ctx context.Context, p *delivery.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockDeliveryPackageRepository) Update(ctx context.Context, p *delivery.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockDeliveryPackageRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Package), args.Error(1)
}
func (m *MockDeliveryPackageRepository) GetAllExpirable(ctx context.Context, now time.Time) ([]*delivery.Package, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Package), args.Error(1)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) DeliveryPackageRepository() ports.DeliveryPackageRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}
func (m *MockListingRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}
func (m *MockListingRepository) GetBySlug(ctx context.Context, agencyID kernel.UUID, slug kernel.Slug) (*listing.Listing, error) {
	args := m.Called(ctx, agencyID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

type MockListingUoW struct{ mock.Mock }

func (m *MockListingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockListingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockListingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockListingUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockMediaAssetRepository struct{ mock.Mock }

func (m *MockMediaAssetRepository) Add(ctx context.Context, a *media.MediaAsset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockMediaAssetRepository) Update(ctx context.Context, a *media.MediaAsset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockMediaAssetRepository) Get(ctx context.Context, id kernel.UUID) (*media.MediaAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.MediaAsset), args.Error(1)
}
func (m *MockMediaAssetRepository) GetByChecksum(ctx context.Context, studioID kernel.UUID, checksum string) (*media.MediaAsset, error) {
	args := m.Called(ctx, studioID, checksum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.MediaAsset), args.Error(1)
}

type MockMediaUoW struct{ mock.Mock }

func (m *MockMediaUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMediaUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMediaUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMediaUoW) MediaAssetRepository() ports.MediaAssetRepository {
	args := m.Called()
	return args.Get(0).(ports.MediaAssetRepository)
}

type MockMediaUoWFactory struct{ mock.Mock }

func (m *MockMediaUoWFactory) Create() commands.MediaUoW {
	args := m.Called()
	return args.Get(0).(commands.MediaUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockJobDispatcher struct{ mock.Mock }

func (m *MockJobDispatcher) Enqueue(ctx context.Context, job ports.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
