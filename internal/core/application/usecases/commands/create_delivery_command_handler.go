package commands

import (
	"context"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/services"
	"proofparcel/internal/core/ports"
)

// CreateDeliveryCommandHandler stores a Pending delivery and moves its amount
// into escrow. The identifier is drawn before the unit of work begins.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, otps, clock)
//	cmd, _ := NewCreateDeliveryCommand(seller, buyer, 1000, "widget")
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("create delivery: %w", err)
//	}
//	// The delivery is Pending and its amount is held in escrow
type CreateDeliveryCommandHandler struct {
	uowFactory LifecycleUoWFactory
	otps       services.OtpService
	clock      ports.Clock
}

// NewCreateDeliveryCommandHandler creates a handler for new deliveries.
// The OtpService supplies delivery identifiers and the clock stamps the
// Pending history entry.
func NewCreateDeliveryCommandHandler(
	uowFactory LifecycleUoWFactory,
	otps services.OtpService,
	clock ports.Clock,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		otps:       otps,
		clock:      clock,
	}
}

// Handle draws a delivery id, stores the Pending delivery and credits the
// escrow ledger with its amount in one unit of work. It returns the new id.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	id, err := h.otps.GenerateID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	d, err := delivery.NewDelivery(id, cmd.Caller(), cmd.Buyer(), cmd.Amount(), cmd.Description(), h.clock.Now())
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return kernel.ID{}, err
	}

	escrowRepo := uow.EscrowRepository()
	ledger, err := escrowRepo.Get(ctx)
	if err != nil {
		return kernel.ID{}, err
	}
	if ledger, err = ledger.Deposit(d.Amount()); err != nil {
		return kernel.ID{}, err
	}
	if err = escrowRepo.Save(ctx, ledger); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return id, nil
}
