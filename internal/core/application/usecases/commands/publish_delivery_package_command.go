package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrPublishDeliveryPackageCommandIsNotConstructed = errors.New(
	"PublishDeliveryPackageCommand must be created via NewPublishDeliveryPackageCommand constructor",
)

// PublishDeliveryPackageCommand requests release of a draft package to its
// recipients.
type PublishDeliveryPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPublishDeliveryPackageCommand creates a command to publish a package.
func NewPublishDeliveryPackageCommand(packageID kernel.UUID) (PublishDeliveryPackageCommand, error) {
	cmd := PublishDeliveryPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return PublishDeliveryPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishDeliveryPackageCommand) Validate() error {
	return c.guard.Validate(ErrPublishDeliveryPackageCommandIsNotConstructed)
}

// PackageID returns the package to publish.
func (c PublishDeliveryPackageCommand) PackageID() kernel.UUID { return c.packageID }

func (c *PublishDeliveryPackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}
