package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrRevokeDeliveryPackageCommandIsNotConstructed = errors.New(
	"RevokeDeliveryPackageCommand must be created via NewRevokeDeliveryPackageCommand constructor",
)

// RevokeDeliveryPackageCommand requests withdrawal of a published package.
type RevokeDeliveryPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRevokeDeliveryPackageCommand creates a command to revoke a package.
func NewRevokeDeliveryPackageCommand(packageID kernel.UUID) (RevokeDeliveryPackageCommand, error) {
	cmd := RevokeDeliveryPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return RevokeDeliveryPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeDeliveryPackageCommand) Validate() error {
	return c.guard.Validate(ErrRevokeDeliveryPackageCommandIsNotConstructed)
}

// PackageID returns the package to revoke.
func (c RevokeDeliveryPackageCommand) PackageID() kernel.UUID { return c.packageID }

func (c *RevokeDeliveryPackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}
