package delivery

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// AccessType describes how a delivery package may be retrieved.
type AccessType int

const (
	// AccessUnknown represents an invalid or undefined access type.
	AccessUnknown AccessType = iota

	// AccessPublic allows anyone with the link to retrieve the package.
	AccessPublic

	// AccessToken requires a bearer token minted at grant time.
	AccessToken

	// AccessPrivate addresses a named recipient by email.
	AccessPrivate
)

func getAccessTypeStrings() map[AccessType]string {
	return map[AccessType]string{
		AccessUnknown: "Unknown",
		AccessPublic:  "Public",
		AccessToken:   "Token",
		AccessPrivate: "Private",
	}
}

// Validate checks if the AccessType value is valid.
func (t AccessType) Validate() error {
	if t <= AccessUnknown || t > AccessPrivate {
		return errs.NewValueIsInvalidErrorWithCause("access type is invalid",
			fmt.Errorf("%d is not a valid access type", t))
	}
	return nil
}

// String returns the human-readable name of the access type.
func (t AccessType) String() string {
	if str, ok := getAccessTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// ErrAccessIsNotConstructed is returned when using an improperly initialized Access.
var ErrAccessIsNotConstructed = errors.New("Access must be created via the owning Package")

// Access is a grant describing who may retrieve a delivery package and how
// often. Private accesses address a named recipient; any access may carry a
// download quota and a password hash. The plaintext password never reaches
// the domain: hashing is the application layer's collaborator.
//
// Invariant: downloads never exceeds maxDownloads when the quota is set.
// The check-and-increment is a single aggregate operation, so the counter
// cannot overflow between check and write within one unit of work.
type Access struct {
	id            kernel.UUID
	accessType    AccessType
	recipientEmail string
	recipientName  string
	maxDownloads  *int
	downloads     int
	passwordHash  string

	guard guard.ConstructorGuard
}

// newAccess constructs an access grant. Only the owning package calls this.
func newAccess(
	id kernel.UUID,
	accessType AccessType,
	recipientEmail, recipientName string,
	maxDownloads *int,
	passwordHash string,
) (*Access, error) {
	access := &Access{
		recipientName: recipientName,
		passwordHash:  passwordHash,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		access.setID(id),
		access.setType(accessType),
		access.setMaxDownloads(maxDownloads),
	); err != nil {
		return nil, err
	}

	if accessType == AccessPrivate && recipientEmail == "" {
		return nil, errs.NewValueIsRequiredError("recipientEmail")
	}
	access.recipientEmail = recipientEmail

	return access, nil
}

// RestoreAccess reconstructs an access grant from persistence, including its
// consumed download count.
func RestoreAccess(
	id kernel.UUID,
	accessType AccessType,
	recipientEmail, recipientName string,
	maxDownloads *int,
	downloads int,
	passwordHash string,
) (*Access, error) {
	access, err := newAccess(id, accessType, recipientEmail, recipientName, maxDownloads, passwordHash)
	if err != nil {
		return nil, err
	}
	if downloads < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("downloads",
			fmt.Errorf("%d is negative", downloads))
	}
	if maxDownloads != nil && downloads > *maxDownloads {
		return nil, errs.NewValueIsInvalidErrorWithCause("downloads",
			fmt.Errorf("%d exceeds the limit of %d", downloads, *maxDownloads))
	}

	access.downloads = downloads
	return access, nil
}

// Validate ensures the Access was created through the owning aggregate.
func (a *Access) Validate() error {
	if a == nil {
		return ErrAccessIsNotConstructed
	}
	return a.guard.Validate(ErrAccessIsNotConstructed)
}

// ID returns the access's unique identifier.
func (a *Access) ID() kernel.UUID { return a.id }

// Type returns the access type.
func (a *Access) Type() AccessType { return a.accessType }

// RecipientEmail returns the addressed recipient's email, empty unless Private.
func (a *Access) RecipientEmail() string { return a.recipientEmail }

// RecipientName returns the addressed recipient's display name.
func (a *Access) RecipientName() string { return a.recipientName }

// MaxDownloads returns the download quota, nil when unlimited.
func (a *Access) MaxDownloads() *int { return a.maxDownloads }

// Downloads returns the number of successful downloads so far.
func (a *Access) Downloads() int { return a.downloads }

// PasswordHash returns the stored password hash, empty when unprotected.
func (a *Access) PasswordHash() string { return a.passwordHash }

// registerDownload performs the quota check-and-increment.
// Fails with QuotaExceededError once the quota is consumed, leaving the
// counter unchanged.
func (a *Access) registerDownload() error {
	if a.maxDownloads != nil && a.downloads >= *a.maxDownloads {
		return errs.NewQuotaExceededError("downloads", *a.maxDownloads)
	}
	a.downloads++
	return nil
}

func (a *Access) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Access) setType(accessType AccessType) error {
	if err := accessType.Validate(); err != nil {
		return err
	}
	a.accessType = accessType
	return nil
}

func (a *Access) setMaxDownloads(maxDownloads *int) error {
	if maxDownloads != nil && *maxDownloads <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxDownloads",
			fmt.Errorf("%d is not greater than 0", *maxDownloads))
	}
	a.maxDownloads = maxDownloads
	return nil
}
