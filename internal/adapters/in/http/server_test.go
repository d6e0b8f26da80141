package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "shootdesk/internal/adapters/in/http"
	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"
	"shootdesk/internal/core/ports"
	"shootdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShootOrderRepository struct {
	mock.Mock
}

func (m *MockShootOrderRepository) Add(ctx context.Context, aggregate *order.ShootOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShootOrderRepository) Update(ctx context.Context, aggregate *order.ShootOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShootOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ShootOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ShootOrder), args.Error(1)
}

func (m *MockShootOrderRepository) GetAllActive(ctx context.Context) ([]*order.ShootOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.ShootOrder), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

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

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryPackageRepository struct {
	mock.Mock
}

func (m *MockDeliveryPackageRepository) Add(ctx context.Context, aggregate *delivery.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryPackageRepository) Update(ctx context.Context, aggregate *delivery.Package) error {
	args := m.Called(ctx, aggregate)
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

type MockPackageUoW struct {
	mock.Mock
}

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

type MockPackageUoWFactory struct {
	mock.Mock
}

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

// request fires a JSON request at a server with only the given handlers
// wired and returns the recorded response.
func request(t *testing.T, handlers adapter.Handlers, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	adapter.NewServer(handlers).RegisterRoutes(e)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) adapter.Envelope {
	t.Helper()
	var envelope adapter.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestServer_PlaceShootOrder_Created(t *testing.T) {
	repo := new(MockShootOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("ShootOrderRepository").Return(repo)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.ShootOrder")).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	handlers := adapter.Handlers{
		PlaceShootOrder: commands.NewPlaceShootOrderCommandHandler(factory),
	}
	body := `{
		"agencyId": "` + kernel.NewUUID().String() + `",
		"studioId": "` + kernel.NewUUID().String() + `",
		"listingId": "` + kernel.NewUUID().String() + `",
		"createdBy": "` + kernel.NewUUID().String() + `",
		"currency": "AUD"
	}`

	rec := request(t, handlers, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	_, err := kernel.UUIDFromString(data["id"].(string))
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServer_PlaceShootOrder_InvalidCurrency(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handlers := adapter.Handlers{
		PlaceShootOrder: commands.NewPlaceShootOrderCommandHandler(factory),
	}
	body := `{
		"agencyId": "` + kernel.NewUUID().String() + `",
		"studioId": "` + kernel.NewUUID().String() + `",
		"listingId": "` + kernel.NewUUID().String() + `",
		"createdBy": "` + kernel.NewUUID().String() + `",
		"currency": "dollars"
	}`

	rec := request(t, handlers, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Errors)
	factory.AssertNotCalled(t, "Create")
}

func TestServer_CancelShootOrder_NotFound(t *testing.T) {
	orderID := kernel.NewUUID()
	repo := new(MockShootOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("ShootOrderRepository").Return(repo)
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("shootOrder", orderID))
	uow.On("Rollback", mock.Anything).Return(nil)

	handlers := adapter.Handlers{
		CancelShootOrder: commands.NewCancelShootOrderCommandHandler(factory),
	}

	rec := request(t, handlers, http.MethodPost,
		"/api/v1/orders/"+orderID.String()+"/cancel",
		`{"reason": "client pulled the campaign"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
}

func TestServer_AdvanceShootOrder_UnknownTarget(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handlers := adapter.Handlers{
		AdvanceShootOrder: commands.NewAdvanceShootOrderCommandHandler(factory),
	}

	rec := request(t, handlers, http.MethodPost,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/advance",
		`{"target": "Teleported"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestServer_RegisterDownload_QuotaExceeded(t *testing.T) {
	packageID := kernel.NewUUID()
	accessID := kernel.NewUUID()

	pkg, err := delivery.NewPackage(
		packageID, kernel.NewUUID(), kernel.NewUUID(),
		"12 Seaview Parade shoot", true, nil)
	require.NoError(t, err)
	maxDownloads := 1
	_, err = pkg.GrantAccess(accessID, delivery.AccessPublic, "", "", &maxDownloads, "")
	require.NoError(t, err)
	require.NoError(t, pkg.Publish())
	require.NoError(t, pkg.RegisterDownload(accessID))

	repo := new(MockDeliveryPackageRepository)
	uow := new(MockPackageUoW)
	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("DeliveryPackageRepository").Return(repo)
	repo.On("Get", mock.Anything, packageID).Return(pkg, nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	handlers := adapter.Handlers{
		RegisterDownload: commands.NewRegisterDownloadCommandHandler(factory),
	}

	rec := request(t, handlers, http.MethodPost,
		"/api/v1/packages/"+packageID.String()+"/accesses/"+accessID.String()+"/downloads", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "quota exceeded", envelope.Message)
}

func TestServer_GetListings_MissingAgencyID(t *testing.T) {
	handlers := adapter.Handlers{}

	rec := request(t, handlers, http.MethodGet, "/api/v1/listings", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateListing_UnknownPropertyType(t *testing.T) {
	handlers := adapter.Handlers{}
	body := `{
		"ownerAgencyId": "` + kernel.NewUUID().String() + `",
		"title": "12 Seaview Parade, Cronulla",
		"listingType": "ForSale",
		"propertyType": "Castle",
		"address": {
			"line1": "12 Seaview Parade", "suburb": "Cronulla", "city": "Sydney",
			"state": "NSW", "postcode": "2230", "country": "AU"
		}
	}`

	rec := request(t, handlers, http.MethodPost, "/api/v1/listings", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Errors[0], "Castle")
}
