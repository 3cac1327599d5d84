// Package commands contains the operations that change service state. Each
// command is a validated value paired with a handler; handlers work through a
// unit of work and never hold one across a random draw.
package commands

import (
	"context"

	"proofparcel/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager controls the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	NftRepoFactory interface {
		NftRepository() ports.NftRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	SnapshotRepoFactory interface {
		SnapshotRepository() ports.SnapshotRepository
	}

	// LifecycleUoW covers delivery transitions: the delivery itself, the escrow
	// ledger and the notifications a transition emits.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, id)
	//   // ... transition d, update it, append notifications
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		DeliveryRepoFactory
		EscrowRepoFactory
		NotificationRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// MintUoW covers issuing a receipt artifact for a confirmed delivery.
	MintUoW interface {
		TxManager
		DeliveryRepoFactory
		NftRepoFactory
		NotificationRepoFactory
	}

	MintUoWFactory interface {
		Create() MintUoW
	}

	// CheckpointUoW exports or replaces the durable state as a whole.
	CheckpointUoW interface {
		TxManager
		SnapshotRepoFactory
	}

	CheckpointUoWFactory interface {
		Create() CheckpointUoW
	}
)
