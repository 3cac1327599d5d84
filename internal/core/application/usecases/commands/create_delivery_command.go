package commands

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand opens a new escrow delivery. The caller becomes the seller.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(caller, buyer, 1000, "widget")
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid or errs.ErrValueIsRequired
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Identity
	buyer       kernel.Identity
	amount      uint64
	description string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	caller kernel.Identity,
	buyer kernel.Identity,
	amount uint64,
	description string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setBuyer(buyer),
		cmd.setAmount(amount),
		cmd.setDescription(description),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Caller() kernel.Identity {
	return c.caller
}

func (c CreateDeliveryCommand) Buyer() kernel.Identity {
	return c.buyer
}

func (c CreateDeliveryCommand) Amount() uint64 {
	return c.amount
}

func (c CreateDeliveryCommand) Description() string {
	return c.description
}

func (c *CreateDeliveryCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("caller", err)
	}
	c.caller = caller
	return nil
}

func (c *CreateDeliveryCommand) setBuyer(buyer kernel.Identity) error {
	if err := buyer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer", err)
	}
	c.buyer = buyer
	return nil
}

func (c *CreateDeliveryCommand) setAmount(amount uint64) error {
	if amount == 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", errors.New("amount must be greater than 0"))
	}
	c.amount = amount
	return nil
}

func (c *CreateDeliveryCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsInvalidErrorWithCause("description", errors.New("description cannot be empty"))
	}
	c.description = description
	return nil
}
