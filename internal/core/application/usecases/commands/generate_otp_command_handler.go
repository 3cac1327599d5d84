package commands

import (
	"context"

	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/domain/services"
	"proofparcel/internal/core/ports"
)

// GenerateOtpCommandHandler issues the code the buyer later uses to confirm.
//
// The code is drawn between two units of work. The first checks the request so
// that a rejected call consumes no randomness; the second re-reads the
// delivery, since another request may have changed it during the draw, and
// applies the transition.
type GenerateOtpCommandHandler struct {
	uowFactory LifecycleUoWFactory
	otps       services.OtpService
	clock      ports.Clock
	notifier   Notifier
}

// NewGenerateOtpCommandHandler creates a handler that issues one-time codes.
// Codes come from the OtpService; the clock sets their expiry.
func NewGenerateOtpCommandHandler(
	uowFactory LifecycleUoWFactory,
	otps services.OtpService,
	clock ports.Clock,
	notifier Notifier,
) GenerateOtpCommandHandler {
	return GenerateOtpCommandHandler{
		uowFactory: uowFactory,
		otps:       otps,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle returns the issued code.
func (h *GenerateOtpCommandHandler) Handle(ctx context.Context, cmd GenerateOtpCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if err := h.precheck(ctx, cmd); err != nil {
		return "", err
	}

	code, err := h.otps.GenerateCode(ctx)
	if err != nil {
		return "", err
	}

	if err = h.issue(ctx, cmd, code); err != nil {
		return "", err
	}
	return code, nil
}

func (h *GenerateOtpCommandHandler) precheck(ctx context.Context, cmd GenerateOtpCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	return d.CanDeliver(cmd.Caller())
}

func (h *GenerateOtpCommandHandler) issue(ctx context.Context, cmd GenerateOtpCommand, code string) error {
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
	if err = d.Deliver(cmd.Caller(), code, now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	recorded, err := h.notifier.record(ctx, uow.NotificationRepository(), now, message{
		recipient: d.Buyer(),
		text:      notification.DeliveredMessage(d.ID()),
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
