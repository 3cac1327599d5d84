// Package memory is the authoritative in-process store of deliveries, NFTs,
// the escrow ledger and notification logs.
//
// All access goes through a UnitOfWork. Begin takes the store's single
// exclusive slot, so at most one unit of work reads or writes at a time.
// Writes are applied in place and journaled; Rollback replays the journal
// backwards, Commit drops it. Because no other unit of work can observe the
// store while one is active, a transaction's writes become visible to others
// all at once on Commit.
//
// Records are kept as plain DTOs. Domain objects are rebuilt from them on
// every read, so callers never share memory with the store.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DeliveryRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import "proofparcel/internal/core/ports"

// Store owns the service state. Create one per process in the composition root.
type Store struct {
	slot chan struct{}

	deliveries    map[string]deliveryDTO
	nfts          map[string]nftDTO
	notifications map[string][]notificationDTO
	escrow        uint64
}

func NewStore() *Store {
	return &Store{
		slot:          make(chan struct{}, 1),
		deliveries:    make(map[string]deliveryDTO),
		nfts:          make(map[string]nftDTO),
		notifications: make(map[string][]notificationDTO),
	}
}

// UnitOfWorkFactory hands out units of work bound to one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
