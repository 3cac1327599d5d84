package commands

import (
	"context"

	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/ports"
)

// ReleaseEscrowCommandHandler finalizes a confirmed delivery and takes its
// amount out of escrow in the same unit of work.
type ReleaseEscrowCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      ports.Clock
	notifier   Notifier
}

// NewReleaseEscrowCommandHandler creates a handler that pays out escrow.
func NewReleaseEscrowCommandHandler(
	uowFactory LifecycleUoWFactory,
	clock ports.Clock,
	notifier Notifier,
) ReleaseEscrowCommandHandler {
	return ReleaseEscrowCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle moves a Confirmed delivery to EscrowReleased and debits its amount
// from the ledger. Only the seller may release.
func (h *ReleaseEscrowCommandHandler) Handle(ctx context.Context, cmd ReleaseEscrowCommand) error {
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
	if err = d.ReleaseEscrow(cmd.Caller(), now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()
	ledger, err := escrowRepo.Get(ctx)
	if err != nil {
		return err
	}
	if ledger, err = ledger.Release(d.Amount()); err != nil {
		return err
	}
	if err = escrowRepo.Save(ctx, ledger); err != nil {
		return err
	}

	recorded, err := h.notifier.record(ctx, uow.NotificationRepository(), now, message{
		recipient: d.Seller(),
		text:      notification.EscrowReleasedMessage(d.ID()),
		category:  notification.Success,
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
