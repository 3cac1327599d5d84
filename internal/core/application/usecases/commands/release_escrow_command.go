package commands

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/guard"
)

var ErrReleaseEscrowCommandIsNotConstructed = errors.New(
	"ReleaseEscrowCommand must be created via NewReleaseEscrowCommand constructor",
)

// ReleaseEscrowCommand asks to pay out a confirmed delivery.
type ReleaseEscrowCommand struct {
	caller     kernel.Identity
	deliveryID kernel.ID

	guard guard.ConstructorGuard
}

func NewReleaseEscrowCommand(caller kernel.Identity, deliveryID kernel.ID) (ReleaseEscrowCommand, error) {
	if err := validateTarget(caller, deliveryID); err != nil {
		return ReleaseEscrowCommand{}, err
	}
	return ReleaseEscrowCommand{
		caller:     caller,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseEscrowCommand) Validate() error {
	return c.guard.Validate(ErrReleaseEscrowCommandIsNotConstructed)
}

func (c ReleaseEscrowCommand) Caller() kernel.Identity {
	return c.caller
}

func (c ReleaseEscrowCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}
