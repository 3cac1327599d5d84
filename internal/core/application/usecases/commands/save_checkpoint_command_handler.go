package commands

import (
	"context"
	"fmt"

	"proofparcel/internal/core/ports"
)

// SaveCheckpointCommandHandler exports deliveries, artifacts and the ledger
// under one unit of work, so the checkpoint is a consistent cut, and hands the
// encoded blob to the store.
type SaveCheckpointCommandHandler struct {
	uowFactory CheckpointUoWFactory
	codec      ports.CheckpointCodec
	store      ports.CheckpointStore
}

// NewSaveCheckpointCommandHandler creates a handler that writes checkpoints
// through codec into store.
func NewSaveCheckpointCommandHandler(
	uowFactory CheckpointUoWFactory,
	codec ports.CheckpointCodec,
	store ports.CheckpointStore,
) SaveCheckpointCommandHandler {
	return SaveCheckpointCommandHandler{
		uowFactory: uowFactory,
		codec:      codec,
		store:      store,
	}
}

// Handle encodes the current state and saves it. Notifications are not part
// of a checkpoint.
func (h *SaveCheckpointCommandHandler) Handle(ctx context.Context, cmd SaveCheckpointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.export(ctx)
	if err != nil {
		return err
	}

	blob, err := h.codec.Encode(snapshot)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	if err = h.store.Save(ctx, blob); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func (h *SaveCheckpointCommandHandler) export(ctx context.Context) (ports.Snapshot, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	snapshot, err := uow.SnapshotRepository().Export(ctx)
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("export state: %w", err)
	}
	return snapshot, nil
}
