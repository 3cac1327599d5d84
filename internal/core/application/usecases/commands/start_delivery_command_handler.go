package commands

import (
	"context"

	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/ports"
)

// StartDeliveryCommandHandler lets the seller dispatch a delivery and tells
// the buyer it is on its way.
type StartDeliveryCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      ports.Clock
	notifier   Notifier
}

// NewStartDeliveryCommandHandler creates a handler for dispatching deliveries.
func NewStartDeliveryCommandHandler(
	uowFactory LifecycleUoWFactory,
	clock ports.Clock,
	notifier Notifier,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle moves a Pending delivery to InTransit. Only the seller may start it.
// The buyer's notification is published after the commit.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = d.Start(cmd.Caller(), now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	recorded, err := h.notifier.record(ctx, uow.NotificationRepository(), now, message{
		recipient: d.Buyer(),
		text:      notification.InTransitMessage(d.ID()),
		category:  notification.Info,
	})
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.publish(ctx, recorded)
	return nil
}
