package commands

import (
	"errors"
	"time"

	"shootdesk/internal/pkg/guard"
)

var ErrExpireDeliveryPackagesCommandIsNotConstructed = errors.New(
	"ExpireDeliveryPackagesCommand must be created via NewExpireDeliveryPackagesCommand constructor",
)

// ExpireDeliveryPackagesCommand sweeps published packages whose expiry
// deadline elapsed at the given instant. Driven by the periodic job.
type ExpireDeliveryPackagesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireDeliveryPackagesCommand creates a command to sweep expired
// packages as of the given instant.
func NewExpireDeliveryPackagesCommand(now time.Time) ExpireDeliveryPackagesCommand {
	return ExpireDeliveryPackagesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireDeliveryPackagesCommand) Validate() error {
	return c.guard.Validate(ErrExpireDeliveryPackagesCommandIsNotConstructed)
}

// Now returns the instant the sweep measures deadlines against.
func (c ExpireDeliveryPackagesCommand) Now() time.Time { return c.now }
