package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// Coordinate bounds for geographic validation.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// countryCodePattern matches ISO-3166-1 alpha-2 country codes.
var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object used by listings.
// Line1, City, State and Postcode are required; Country must be an
// ISO-3166-1 alpha-2 code; optional coordinates must be within geographic
// bounds. An Address is never mutated: derived addresses are produced via
// the With* withers, which re-run full validation.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Ocean Dr", "", "Bondi", "Sydney", "NSW", "2026", "AU", nil, nil)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	line1     string
	line2     string
	suburb    string
	city      string
	state     string
	postcode  string
	country   string
	latitude  *float64
	longitude *float64

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Line2, suburb and coordinates are
// optional; every other field is required. Construction fails on the first
// violated constraint set, naming the offending field, and never produces a
// partially valid instance.
func NewAddress(
	line1, line2, suburb, city, state, postcode, country string,
	latitude, longitude *float64,
) (Address, error) {
	addr := Address{
		line2:  line2,
		suburb: suburb,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setLine1(line1),
		addr.setCity(city),
		addr.setState(state),
		addr.setPostcode(postcode),
		addr.setCountry(country),
		addr.setLatitude(latitude),
		addr.setLongitude(longitude),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line1 returns the primary street line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional secondary street line.
func (a Address) Line2() string { return a.line2 }

// Suburb returns the optional suburb or district.
func (a Address) Suburb() string { return a.suburb }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region.
func (a Address) State() string { return a.state }

// Postcode returns the postal code.
func (a Address) Postcode() string { return a.postcode }

// Country returns the ISO-3166-1 alpha-2 country code.
func (a Address) Country() string { return a.country }

// Latitude returns the optional latitude. Nil when unset.
func (a Address) Latitude() *float64 { return a.latitude }

// Longitude returns the optional longitude. Nil when unset.
func (a Address) Longitude() *float64 { return a.longitude }

// IsEqual compares two addresses by all attribute values.
func (a Address) IsEqual(other Address) bool {
	return a.line1 == other.line1 &&
		a.line2 == other.line2 &&
		a.suburb == other.suburb &&
		a.city == other.city &&
		a.state == other.state &&
		a.postcode == other.postcode &&
		a.country == other.country &&
		floatPtrEqual(a.latitude, other.latitude) &&
		floatPtrEqual(a.longitude, other.longitude)
}

// WithCoordinates returns a copy of the address carrying the given
// coordinates, re-validated against geographic bounds.
func (a Address) WithCoordinates(latitude, longitude float64) (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return NewAddress(a.line1, a.line2, a.suburb, a.city, a.state, a.postcode, a.country, &latitude, &longitude)
}

// WithLine2 returns a copy of the address with the secondary street line replaced.
func (a Address) WithLine2(line2 string) (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return NewAddress(a.line1, line2, a.suburb, a.city, a.state, a.postcode, a.country, a.latitude, a.longitude)
}

// String returns a single-line rendering suitable for logs.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s %s, %s", a.line1, a.city, a.state, a.postcode, a.country)
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setPostcode(postcode string) error {
	if postcode == "" {
		return errs.NewValueIsRequiredError("postcode")
	}
	a.postcode = postcode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	if !countryCodePattern.MatchString(country) {
		return errs.NewValueIsInvalidErrorWithCause("country",
			fmt.Errorf("%q is not an ISO-3166-1 alpha-2 code", country))
	}
	a.country = country
	return nil
}

func (a *Address) setLatitude(latitude *float64) error {
	if latitude == nil {
		return nil
	}
	if *latitude < LatitudeMin || *latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", *latitude, LatitudeMin, LatitudeMax)
	}
	a.latitude = latitude
	return nil
}

func (a *Address) setLongitude(longitude *float64) error {
	if longitude == nil {
		return nil
	}
	if *longitude < LongitudeMin || *longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", *longitude, LongitudeMin, LongitudeMax)
	}
	a.longitude = longitude
	return nil
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
