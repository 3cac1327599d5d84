package commands

import (
	"context"
	"errors"
	"fmt"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/ports"
	"proofparcel/internal/pkg/errs"
)

// RestoreCheckpointCommandHandler replaces the live state with the last saved
// checkpoint. The codec rehydrates every record through the domain
// constructors; the handler then checks the relations between records before
// anything is replaced. A failed restore leaves the store untouched.
type RestoreCheckpointCommandHandler struct {
	uowFactory CheckpointUoWFactory
	codec      ports.CheckpointCodec
	store      ports.CheckpointStore
}

// NewRestoreCheckpointCommandHandler creates a handler that loads the last
// checkpoint from store.
func NewRestoreCheckpointCommandHandler(
	uowFactory CheckpointUoWFactory,
	codec ports.CheckpointCodec,
	store ports.CheckpointStore,
) RestoreCheckpointCommandHandler {
	return RestoreCheckpointCommandHandler{
		uowFactory: uowFactory,
		codec:      codec,
		store:      store,
	}
}

// Handle reports whether a checkpoint was found. A missing checkpoint is a
// fresh start, not an error.
func (h *RestoreCheckpointCommandHandler) Handle(ctx context.Context, cmd RestoreCheckpointCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	blob, err := h.store.Load(ctx)
	if errors.Is(err, ports.ErrNoCheckpoint) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load checkpoint: %w", err)
	}

	snapshot, err := h.codec.Decode(blob)
	if err != nil {
		return false, fmt.Errorf("decode checkpoint: %w", err)
	}

	if err = CheckSnapshot(snapshot); err != nil {
		return false, fmt.Errorf("checkpoint is inconsistent: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SnapshotRepository().Replace(ctx, snapshot); err != nil {
		return false, fmt.Errorf("replace state: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CheckSnapshot verifies the invariants that span records: the ledger equals
// the amounts still held, and every artifact belongs to the buyer of a
// confirmed delivery, one artifact per delivery.
func CheckSnapshot(snapshot ports.Snapshot) error {
	expected, err := escrow.Expected(snapshot.Deliveries)
	if err != nil {
		return err
	}
	if expected.Balance() != snapshot.Escrow.Balance() {
		return errs.NewValueIsInvalidErrorWithCause("escrow balance",
			fmt.Errorf("ledger holds %d, deliveries hold %d", snapshot.Escrow.Balance(), expected.Balance()))
	}

	deliveries := make(map[string]*delivery.Delivery, len(snapshot.Deliveries))
	for _, d := range snapshot.Deliveries {
		deliveries[d.ID().String()] = d
	}

	minted := make(map[string]bool, len(snapshot.NFTs))
	for _, artifact := range snapshot.NFTs {
		key := artifact.DeliveryID().String()
		d, ok := deliveries[key]
		if !ok {
			return errs.NewObjectNotFoundError("nft delivery", key)
		}
		if _, confirmed := d.ConfirmedAt(); !confirmed {
			return errs.NewValueIsInvalidErrorWithCause("nft",
				fmt.Errorf("artifact %s minted for delivery %s in status %s", artifact.ID(), key, d.Status()))
		}
		if !artifact.Owner().IsEqual(d.Buyer()) {
			return errs.NewValueIsInvalidErrorWithCause("nft",
				fmt.Errorf("artifact %s is not owned by the buyer of delivery %s", artifact.ID(), key))
		}
		if minted[key] {
			return errs.NewValueIsInvalidErrorWithCause("nft",
				fmt.Errorf("delivery %s has more than one artifact", key))
		}
		minted[key] = true
	}
	return nil
}
