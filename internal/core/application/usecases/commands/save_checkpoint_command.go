package commands

import (
	"errors"

	"proofparcel/internal/pkg/guard"
)

var ErrSaveCheckpointCommandIsNotConstructed = errors.New(
	"SaveCheckpointCommand must be created via NewSaveCheckpointCommand constructor",
)

// SaveCheckpointCommand asks to persist the durable state before the process
// stops.
type SaveCheckpointCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveCheckpointCommand() SaveCheckpointCommand {
	return SaveCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *SaveCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrSaveCheckpointCommandIsNotConstructed)
}
