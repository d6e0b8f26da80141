// Package http exposes the REST surface. Each endpoint binds a hand-written
// request body, builds the matching command or query, and wraps the outcome
// in the uniform envelope.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shootdesk/internal/core/application/usecases/commands"
	"shootdesk/internal/core/application/usecases/queries"
	"shootdesk/internal/core/domain/model/kernel"
)

// Handlers collects the command and query handlers the server routes to.
type Handlers struct {
	PlaceShootOrder       commands.PlaceShootOrderCommandHandler
	CancelShootOrder      commands.CancelShootOrderCommandHandler
	AdvanceShootOrder     commands.AdvanceShootOrderCommandHandler
	CreateListing         commands.CreateListingCommandHandler
	RemoveListing         commands.RemoveListingCommandHandler
	RestoreListing        commands.RestoreListingCommandHandler
	CreateDeliveryPackage commands.CreateDeliveryPackageCommandHandler
	PublishPackage        commands.PublishDeliveryPackageCommandHandler
	GrantDeliveryAccess   commands.GrantDeliveryAccessCommandHandler
	RegisterDownload      commands.RegisterDownloadCommandHandler
	RegisterMediaAsset    commands.RegisterMediaAssetCommandHandler

	GetActiveShootOrders queries.GetActiveShootOrdersQueryHandler
	GetListings          queries.GetListingsQueryHandler
}

// Server wires the REST endpoints to the application layer.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server routing to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceShootOrder)
	v1.GET("/orders/active", s.GetActiveShootOrders)
	v1.POST("/orders/:id/cancel", s.CancelShootOrder)
	v1.POST("/orders/:id/advance", s.AdvanceShootOrder)

	v1.POST("/listings", s.CreateListing)
	v1.GET("/listings", s.GetListings)
	v1.DELETE("/listings/:id", s.RemoveListing)
	v1.POST("/listings/:id/restore", s.RestoreListing)

	v1.POST("/packages", s.CreateDeliveryPackage)
	v1.POST("/packages/:id/publish", s.PublishDeliveryPackage)
	v1.POST("/packages/:id/accesses", s.GrantDeliveryAccess)
	v1.POST("/packages/:id/accesses/:accessId/downloads", s.RegisterDownload)

	v1.POST("/media", s.RegisterMediaAsset)
}

// PlaceShootOrder handles POST /api/v1/orders.
func (s *Server) PlaceShootOrder(ctx echo.Context) error {
	var req placeShootOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	agencyID, err := kernel.UUIDFromString(req.AgencyID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	studioID, err := kernel.UUIDFromString(req.StudioID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	createdBy, err := kernel.UUIDFromString(req.CreatedBy)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceShootOrderCommand(
		orderID, agencyID, studioID, listingID, createdBy, req.Currency)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.PlaceShootOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, map[string]string{"id": orderID.String()})
}

// CancelShootOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelShootOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	var req cancelShootOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCancelShootOrderCommand(orderID, req.Reason)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.CancelShootOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// AdvanceShootOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceShootOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	var req advanceShootOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := parseOrderStatus(req.Target)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	cmd, err := commands.NewAdvanceShootOrderCommand(orderID, target)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.AdvanceShootOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// GetActiveShootOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveShootOrders(ctx echo.Context) error {
	query := queries.NewGetActiveShootOrdersQuery()

	orders, err := s.handlers.GetActiveShootOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	type orderResponse struct {
		ID        string `json:"id"`
		AgencyID  string `json:"agencyId"`
		ListingID string `json:"listingId"`
		Status    string `json:"status"`
		Currency  string `json:"currency"`
	}
	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:        o.ID.String(),
			AgencyID:  o.AgencyID.String(),
			ListingID: o.ListingID.String(),
			Status:    o.Status.String(),
			Currency:  o.Currency,
		}
	}

	return ok(ctx, http.StatusOK, response)
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(ctx echo.Context) error {
	var req createListingRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	ownerAgencyID, err := kernel.UUIDFromString(req.OwnerAgencyID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	listingType, err := parseListingType(req.ListingType)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	propertyType, err := parsePropertyType(req.PropertyType)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	addr, err := kernel.NewAddress(
		req.Address.Line1, req.Address.Line2,
		req.Address.Suburb, req.Address.City, req.Address.State,
		req.Address.Postcode, req.Address.Country,
		req.Address.Latitude, req.Address.Longitude,
	)
	if err != nil {
		return failFromError(ctx, err)
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		listingID, ownerAgencyID,
		req.Title, req.Description,
		req.PriceCents,
		listingType, propertyType,
		addr,
	)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.CreateListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, map[string]string{"id": listingID.String()})
}

// GetListings handles GET /api/v1/listings.
func (s *Server) GetListings(ctx echo.Context) error {
	agencyID, err := kernel.UUIDFromString(ctx.QueryParam("agencyId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	includeDeleted := ctx.QueryParam("includeDeleted") == "true"

	query, err := queries.NewGetListingsQuery(agencyID, includeDeleted)
	if err != nil {
		return failFromError(ctx, err)
	}

	listings, err := s.handlers.GetListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failFromError(ctx, err)
	}

	type listingResponse struct {
		ID        string `json:"id"`
		Slug      string `json:"slug"`
		Title     string `json:"title"`
		Status    string `json:"status"`
		IsDeleted bool   `json:"isDeleted"`
	}
	response := make([]listingResponse, len(listings))
	for i, l := range listings {
		response[i] = listingResponse{
			ID:        l.ID.String(),
			Slug:      l.Slug,
			Title:     l.Title,
			Status:    l.Status.String(),
			IsDeleted: l.IsDeleted,
		}
	}

	return ok(ctx, http.StatusOK, response)
}

// RemoveListing handles DELETE /api/v1/listings/:id. The listing is soft
// deleted and stays recoverable through the restore endpoint.
func (s *Server) RemoveListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	cmd, err := commands.NewRemoveListingCommand(listingID, time.Now().UTC())
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.RemoveListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// RestoreListing handles POST /api/v1/listings/:id/restore.
func (s *Server) RestoreListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	cmd, err := commands.NewRestoreListingCommand(listingID)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.RestoreListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// CreateDeliveryPackage handles POST /api/v1/packages.
func (s *Server) CreateDeliveryPackage(ctx echo.Context) error {
	var req createDeliveryPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPackageCommand(
		packageID, orderID, listingID,
		req.Title, req.WatermarkEnabled, req.ExpiresAt)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.CreateDeliveryPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, map[string]string{"id": packageID.String()})
}

// PublishDeliveryPackage handles POST /api/v1/packages/:id/publish.
func (s *Server) PublishDeliveryPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	cmd, err := commands.NewPublishDeliveryPackageCommand(packageID)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.PublishPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// GrantDeliveryAccess handles POST /api/v1/packages/:id/accesses.
func (s *Server) GrantDeliveryAccess(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	var req grantDeliveryAccessRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	accessType, err := parseAccessType(req.AccessType)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	accessID := kernel.NewUUID()
	cmd, err := commands.NewGrantDeliveryAccessCommand(
		packageID, accessID,
		accessType,
		req.RecipientEmail, req.RecipientName,
		req.MaxDownloads,
		req.Password,
	)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.GrantDeliveryAccess.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, map[string]string{"id": accessID.String()})
}

// RegisterDownload handles POST /api/v1/packages/:id/accesses/:accessId/downloads.
func (s *Server) RegisterDownload(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	accessID, err := kernel.UUIDFromString(ctx.Param("accessId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	cmd, err := commands.NewRegisterDownloadCommand(packageID, accessID)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.RegisterDownload.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusOK, nil)
}

// RegisterMediaAsset handles POST /api/v1/media.
func (s *Server) RegisterMediaAsset(ctx echo.Context) error {
	var req registerMediaAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	ownerStudioID, err := kernel.UUIDFromString(req.OwnerStudioID)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}
	resourceType, err := parseResourceType(req.ResourceType)
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	}

	assetID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMediaAssetCommand(
		assetID, ownerStudioID,
		req.Provider, req.ProviderAssetID,
		resourceType,
		req.ChecksumSha256,
		req.SizeBytes,
	)
	if err != nil {
		return failFromError(ctx, err)
	}

	if err := s.handlers.RegisterMediaAsset.Handle(ctx.Request().Context(), cmd); err != nil {
		return failFromError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, map[string]string{"id": assetID.String()})
}
