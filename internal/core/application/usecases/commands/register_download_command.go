package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/guard"
)

var ErrRegisterDownloadCommandIsNotConstructed = errors.New(
	"RegisterDownloadCommand must be created via NewRegisterDownloadCommand constructor",
)

// RegisterDownloadCommand counts one successful retrieval against an
// access grant on a published package.
type RegisterDownloadCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	accessID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterDownloadCommand creates a command to register a download.
func NewRegisterDownloadCommand(packageID, accessID kernel.UUID) (RegisterDownloadCommand, error) {
	cmd := RegisterDownloadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setAccessID(accessID),
	); err != nil {
		return RegisterDownloadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDownloadCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDownloadCommandIsNotConstructed)
}

// PackageID returns the package the download came from.
func (c RegisterDownloadCommand) PackageID() kernel.UUID { return c.packageID }

// AccessID returns the grant the download counts against.
func (c RegisterDownloadCommand) AccessID() kernel.UUID { return c.accessID }

func (c *RegisterDownloadCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

func (c *RegisterDownloadCommand) setAccessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accessID = id
	return nil
}
