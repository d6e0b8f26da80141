package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/delivery"
	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrGrantDeliveryAccessCommandIsNotConstructed = errors.New(
	"GrantDeliveryAccessCommand must be created via NewGrantDeliveryAccessCommand constructor",
)

// GrantDeliveryAccessCommand requests an access grant on a draft package.
// The plaintext password, when given, is hashed by the handler before it
// reaches the aggregate.
type GrantDeliveryAccessCommand struct { //nolint:recvcheck //using for validation
	packageID      kernel.UUID
	accessID       kernel.UUID
	accessType     delivery.AccessType
	recipientEmail string
	recipientName  string
	maxDownloads   *int
	password       string

	guard guard.ConstructorGuard
}

// NewGrantDeliveryAccessCommand creates a command to grant access to a
// package. Private access requires a recipient email (enforced by the
// aggregate); the password and download quota are optional.
func NewGrantDeliveryAccessCommand(
	packageID, accessID kernel.UUID,
	accessType delivery.AccessType,
	recipientEmail, recipientName string,
	maxDownloads *int,
	password string,
) (GrantDeliveryAccessCommand, error) {
	cmd := GrantDeliveryAccessCommand{
		recipientEmail: recipientEmail,
		recipientName:  recipientName,
		maxDownloads:   maxDownloads,
		password:       password,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setAccessID(accessID),
		cmd.setAccessType(accessType),
	); err != nil {
		return GrantDeliveryAccessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantDeliveryAccessCommand) Validate() error {
	return c.guard.Validate(ErrGrantDeliveryAccessCommandIsNotConstructed)
}

// PackageID returns the package to grant access to.
func (c GrantDeliveryAccessCommand) PackageID() kernel.UUID { return c.packageID }

// AccessID returns the identifier for the new grant.
func (c GrantDeliveryAccessCommand) AccessID() kernel.UUID { return c.accessID }

// AccessType returns how the recipient reaches the package.
func (c GrantDeliveryAccessCommand) AccessType() delivery.AccessType { return c.accessType }

// RecipientEmail returns the recipient address, required for private access.
func (c GrantDeliveryAccessCommand) RecipientEmail() string { return c.recipientEmail }

// RecipientName returns the recipient display name.
func (c GrantDeliveryAccessCommand) RecipientName() string { return c.recipientName }

// MaxDownloads returns the optional download quota.
func (c GrantDeliveryAccessCommand) MaxDownloads() *int { return c.maxDownloads }

// Password returns the optional plaintext password to protect the grant.
func (c GrantDeliveryAccessCommand) Password() string { return c.password }

func (c *GrantDeliveryAccessCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

func (c *GrantDeliveryAccessCommand) setAccessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accessID = id
	return nil
}

func (c *GrantDeliveryAccessCommand) setAccessType(accessType delivery.AccessType) error {
	if err := accessType.Validate(); err != nil {
		return err
	}
	c.accessType = accessType
	return nil
}
