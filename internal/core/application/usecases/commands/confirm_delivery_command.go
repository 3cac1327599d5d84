package commands

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand carries the buyer's proof of receipt.
type ConfirmDeliveryCommand struct {
	caller     kernel.Identity
	deliveryID kernel.ID
	code       string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand takes code as supplied. It is compared with the
// issued code only after the delivery is found, the caller is its buyer and the
// delivery is Delivered, so an empty or malformed code is an OtpMismatch.
func NewConfirmDeliveryCommand(caller kernel.Identity, deliveryID kernel.ID, code string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateTarget(caller, deliveryID); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	cmd.caller = caller
	cmd.deliveryID = deliveryID
	cmd.code = code
	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) Caller() kernel.Identity {
	return c.caller
}

func (c ConfirmDeliveryCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}

func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}
