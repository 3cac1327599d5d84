package commands

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand asks to move a Pending delivery to InTransit.
type StartDeliveryCommand struct {
	caller     kernel.Identity
	deliveryID kernel.ID

	guard guard.ConstructorGuard
}

func NewStartDeliveryCommand(caller kernel.Identity, deliveryID kernel.ID) (StartDeliveryCommand, error) {
	if err := validateTarget(caller, deliveryID); err != nil {
		return StartDeliveryCommand{}, err
	}
	return StartDeliveryCommand{
		caller:     caller,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) Caller() kernel.Identity {
	return c.caller
}

func (c StartDeliveryCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}

// validateTarget checks the fields shared by every command addressing an
// existing delivery.
func validateTarget(caller kernel.Identity, deliveryID kernel.ID) error {
	var errCaller error
	if err := caller.Validate(); err != nil {
		errCaller = errs.NewValueIsRequiredErrorWithCause("caller", err)
	}
	return errors.Join(errCaller, deliveryID.Validate())
}
