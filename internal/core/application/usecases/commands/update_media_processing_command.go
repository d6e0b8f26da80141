package commands

import (
	"errors"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/media"
	"shootdesk/internal/pkg/guard"
)

var ErrUpdateMediaProcessingCommandIsNotConstructed = errors.New(
	"UpdateMediaProcessingCommand must be created via NewUpdateMediaProcessingCommand constructor",
)

// UpdateMediaProcessingCommand moves an asset through its processing
// pipeline: Processing when work starts, Ready on success, Failed on
// error. Reported by the background worker.
type UpdateMediaProcessingCommand struct { //nolint:recvcheck //using for validation
	assetID kernel.UUID
	target  media.ProcessStatus

	guard guard.ConstructorGuard
}

// NewUpdateMediaProcessingCommand creates a command to move an asset to
// the target process status.
func NewUpdateMediaProcessingCommand(
	assetID kernel.UUID,
	target media.ProcessStatus,
) (UpdateMediaProcessingCommand, error) {
	cmd := UpdateMediaProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateMediaProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMediaProcessingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMediaProcessingCommandIsNotConstructed)
}

// AssetID returns the asset to update.
func (c UpdateMediaProcessingCommand) AssetID() kernel.UUID { return c.assetID }

// Target returns the process status the asset should reach.
func (c UpdateMediaProcessingCommand) Target() media.ProcessStatus { return c.target }

func (c *UpdateMediaProcessingCommand) setAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assetID = id
	return nil
}

func (c *UpdateMediaProcessingCommand) setTarget(target media.ProcessStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
