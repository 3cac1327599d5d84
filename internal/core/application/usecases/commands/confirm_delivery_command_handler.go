package commands

import (
	"context"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/domain/services"
	"proofparcel/internal/core/ports"
	"proofparcel/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler confirms receipt and mints the receipt artifact.
//
// Confirmation commits on its own. The artifact id is drawn afterwards, and the
// artifact is minted in a second unit of work that re-reads the delivery: the
// seller may have released escrow in the meantime, which does not prevent
// minting. If minting fails the confirmation stands and Handle returns an
// errs.ArtifactNotMintedError.
type ConfirmDeliveryCommandHandler struct {
	lifecycleUoWFactory LifecycleUoWFactory
	mintUoWFactory      MintUoWFactory
	otps                services.OtpService
	minter              services.NftMinter
	clock               ports.Clock
	notifier            Notifier
}

// NewConfirmDeliveryCommandHandler creates a handler for buyer confirmations.
// Confirmation runs on a LifecycleUoW; minting runs on a separate MintUoW.
func NewConfirmDeliveryCommandHandler(
	lifecycleUoWFactory LifecycleUoWFactory,
	mintUoWFactory MintUoWFactory,
	otps services.OtpService,
	minter services.NftMinter,
	clock ports.Clock,
	notifier Notifier,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		lifecycleUoWFactory: lifecycleUoWFactory,
		mintUoWFactory:      mintUoWFactory,
		otps:                otps,
		minter:              minter,
		clock:               clock,
		notifier:            notifier,
	}
}

// Handle returns the id of the minted artifact.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	if err := h.confirm(ctx, cmd); err != nil {
		return kernel.ID{}, err
	}

	artifactID, err := h.otps.GenerateID(ctx)
	if err != nil {
		return kernel.ID{}, errs.NewArtifactNotMintedError(cmd.DeliveryID(), err)
	}

	if err = h.mint(ctx, cmd.DeliveryID(), artifactID); err != nil {
		return kernel.ID{}, errs.NewArtifactNotMintedError(cmd.DeliveryID(), err)
	}
	return artifactID, nil
}

func (h *ConfirmDeliveryCommandHandler) confirm(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	uow := h.lifecycleUoWFactory.Create()
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
	if err = d.Confirm(cmd.Caller(), cmd.Code(), now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	recorded, err := h.notifier.record(ctx, uow.NotificationRepository(), now,
		message{
			recipient: d.Seller(),
			text:      notification.ConfirmedSellerMessage(d.ID()),
			category:  notification.Success,
		},
		message{
			recipient: d.Buyer(),
			text:      notification.ConfirmedBuyerMessage(d.ID()),
			category:  notification.Success,
		},
	)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.publish(ctx, recorded)
	return nil
}

func (h *ConfirmDeliveryCommandHandler) mint(ctx context.Context, deliveryID kernel.ID, artifactID kernel.ID) error {
	uow := h.mintUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, deliveryID)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	artifact, err := h.minter.Mint(artifactID, d, now)
	if err != nil {
		return err
	}
	if err = uow.NftRepository().Add(ctx, artifact); err != nil {
		return err
	}

	recorded, err := h.notifier.record(ctx, uow.NotificationRepository(), now, message{
		recipient: d.Buyer(),
		text:      notification.MintedMessage(d.ID()),
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
