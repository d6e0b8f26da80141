package http

import (
	"fmt"
	"time"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/listing"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/core/domain/model/order"
)

// Request bodies are hand-written rather than generated: the surface is
// small and the enum fields travel as their display names.

type placeShootOrderRequest struct {
	AgencyID  string `json:"agencyId"`
	StudioID  string `json:"studioId"`
	ListingID string `json:"listingId"`
	CreatedBy string `json:"createdBy"`
	Currency  string `json:"currency"`
}

type cancelShootOrderRequest struct {
	Reason string `json:"reason"`
}

type advanceShootOrderRequest struct {
	Target string `json:"target"`
}

type createListingRequest struct {
	OwnerAgencyID string  `json:"ownerAgencyId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	PriceCents    *int64  `json:"priceCents"`
	ListingType   string  `json:"listingType"`
	PropertyType  string  `json:"propertyType"`
	Address       address `json:"address"`
}

type address struct {
	Line1     string   `json:"line1"`
	Line2     string   `json:"line2"`
	Suburb    string   `json:"suburb"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Postcode  string   `json:"postcode"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type createDeliveryPackageRequest struct {
	OrderID          string     `json:"orderId"`
	ListingID        string     `json:"listingId"`
	Title            string     `json:"title"`
	WatermarkEnabled bool       `json:"watermarkEnabled"`
	ExpiresAt        *time.Time `json:"expiresAt"`
}

type grantDeliveryAccessRequest struct {
	AccessType     string `json:"accessType"`
	RecipientEmail string `json:"recipientEmail"`
	RecipientName  string `json:"recipientName"`
	MaxDownloads   *int   `json:"maxDownloads"`
	Password       string `json:"password"`
}

type registerMediaAssetRequest struct {
	OwnerStudioID   string `json:"ownerStudioId"`
	Provider        string `json:"provider"`
	ProviderAssetID string `json:"providerAssetId"`
	ResourceType    string `json:"resourceType"`
	ChecksumSha256  string `json:"checksumSha256"`
	SizeBytes       int64  `json:"sizeBytes"`
}

func parseOrderStatus(s string) (order.Status, error) {
	statuses := map[string]order.Status{
		"Placed":               order.Placed,
		"Accepted":             order.Accepted,
		"Scheduled":            order.Scheduled,
		"InProgress":           order.InProgress,
		"AwaitingDelivery":     order.AwaitingDelivery,
		"AwaitingConfirmation": order.AwaitingConfirmation,
		"Completed":            order.Completed,
		"Cancelled":            order.Cancelled,
	}
	status, ok := statuses[s]
	if !ok {
		return order.Unknown, fmt.Errorf("%q is not an order status", s)
	}
	return status, nil
}

func parseAccessType(s string) (delivery.AccessType, error) {
	types := map[string]delivery.AccessType{
		"Public":  delivery.AccessPublic,
		"Token":   delivery.AccessToken,
		"Private": delivery.AccessPrivate,
	}
	accessType, ok := types[s]
	if !ok {
		return delivery.AccessUnknown, fmt.Errorf("%q is not an access type", s)
	}
	return accessType, nil
}

func parseListingType(s string) (listing.ListingType, error) {
	types := map[string]listing.ListingType{
		"ForSale": listing.ForSale,
		"ForRent": listing.ForRent,
		"Auction": listing.Auction,
	}
	listingType, ok := types[s]
	if !ok {
		return listing.ListingTypeUnknown, fmt.Errorf("%q is not a listing type", s)
	}
	return listingType, nil
}

func parsePropertyType(s string) (listing.PropertyType, error) {
	types := map[string]listing.PropertyType{
		"House":      listing.House,
		"Apartment":  listing.Apartment,
		"Townhouse":  listing.Townhouse,
		"Land":       listing.Land,
		"Commercial": listing.Commercial,
	}
	propertyType, ok := types[s]
	if !ok {
		return listing.PropertyTypeUnknown, fmt.Errorf("%q is not a property type", s)
	}
	return propertyType, nil
}

func parseResourceType(s string) (media.ResourceType, error) {
	types := map[string]media.ResourceType{
		"Image":     media.Image,
		"Video":     media.Video,
		"Floorplan": media.Floorplan,
		"Panorama":  media.Panorama,
		"Document":  media.Document,
	}
	resourceType, ok := types[s]
	if !ok {
		return media.ResourceTypeUnknown, fmt.Errorf("%q is not a resource type", s)
	}
	return resourceType, nil
}
