package commands

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/guard"
)

var ErrGenerateOtpCommandIsNotConstructed = errors.New(
	"GenerateOtpCommand must be created via NewGenerateOtpCommand constructor",
)

// GenerateOtpCommand asks to issue the one-time code for an in-transit delivery.
type GenerateOtpCommand struct {
	caller     kernel.Identity
	deliveryID kernel.ID

	guard guard.ConstructorGuard
}

func NewGenerateOtpCommand(caller kernel.Identity, deliveryID kernel.ID) (GenerateOtpCommand, error) {
	if err := validateTarget(caller, deliveryID); err != nil {
		return GenerateOtpCommand{}, err
	}
	return GenerateOtpCommand{
		caller:     caller,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateOtpCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOtpCommandIsNotConstructed)
}

func (c GenerateOtpCommand) Caller() kernel.Identity {
	return c.caller
}

func (c GenerateOtpCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}
