package listing

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// ListingType tells whether the property is offered for sale or for rent.
type ListingType int

const (
	// ListingTypeUnknown represents an invalid or undefined type.
	ListingTypeUnknown ListingType = iota

	// ForSale is a sale listing.
	ForSale

	// ForRent is a rental listing.
	ForRent

	// Auction is a listing sold at auction.
	Auction
)

func getListingTypeStrings() map[ListingType]string {
	return map[ListingType]string{
		ListingTypeUnknown: "Unknown",
		ForSale:            "ForSale",
		ForRent:            "ForRent",
		Auction:            "Auction",
	}
}

// Validate checks if the ListingType value is valid.
func (t ListingType) Validate() error {
	if t <= ListingTypeUnknown || t > Auction {
		return errs.NewValueIsInvalidErrorWithCause("listingType is invalid",
			fmt.Errorf("%d is not a valid listing type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t ListingType) String() string {
	if str, ok := getListingTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// PropertyType classifies the property itself.
type PropertyType int

const (
	// PropertyTypeUnknown represents an invalid or undefined type.
	PropertyTypeUnknown PropertyType = iota

	// House is a detached dwelling.
	House

	// Apartment is a unit in a multi-dwelling building.
	Apartment

	// Townhouse is an attached multi-storey dwelling.
	Townhouse

	// Land is a vacant block.
	Land

	// Commercial is a commercial premises.
	Commercial
)

func getPropertyTypeStrings() map[PropertyType]string {
	return map[PropertyType]string{
		PropertyTypeUnknown: "Unknown",
		House:               "House",
		Apartment:           "Apartment",
		Townhouse:           "Townhouse",
		Land:                "Land",
		Commercial:          "Commercial",
	}
}

// Validate checks if the PropertyType value is valid.
func (t PropertyType) Validate() error {
	if t <= PropertyTypeUnknown || t > Commercial {
		return errs.NewValueIsInvalidErrorWithCause("propertyType is invalid",
			fmt.Errorf("%d is not a valid property type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t PropertyType) String() string {
	if str, ok := getPropertyTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
