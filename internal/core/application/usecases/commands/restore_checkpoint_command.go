package commands

import (
	"errors"

	"proofparcel/internal/pkg/guard"
)

var ErrRestoreCheckpointCommandIsNotConstructed = errors.New(
	"RestoreCheckpointCommand must be created via NewRestoreCheckpointCommand constructor",
)

// RestoreCheckpointCommand asks to load the last saved state on startup.
type RestoreCheckpointCommand struct {
	guard guard.ConstructorGuard
}

func NewRestoreCheckpointCommand() RestoreCheckpointCommand {
	return RestoreCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *RestoreCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrRestoreCheckpointCommandIsNotConstructed)
}
