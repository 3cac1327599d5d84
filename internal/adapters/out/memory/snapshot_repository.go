package memory

import (
	"context"
	"errors"

	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/ports"
)

// SnapshotRepository implements ports.SnapshotRepository on a Store.
type SnapshotRepository struct {
	uow *UnitOfWork
}

func (r *SnapshotRepository) Export(_ context.Context) (ports.Snapshot, error) {
	if err := r.uow.check(); err != nil {
		return ports.Snapshot{}, err
	}
	store := r.uow.store

	deliveryDTOs := make([]deliveryDTO, 0, len(store.deliveries))
	for _, dto := range store.deliveries {
		deliveryDTOs = append(deliveryDTOs, dto)
	}
	sortDeliveries(deliveryDTOs)

	snapshot := ports.Snapshot{}
	for _, dto := range deliveryDTOs {
		d, err := deliveryToDomain(dto)
		if err != nil {
			return ports.Snapshot{}, err
		}
		snapshot.Deliveries = append(snapshot.Deliveries, d)
	}

	nftDTOs := make([]nftDTO, 0, len(store.nfts))
	for _, dto := range store.nfts {
		nftDTOs = append(nftDTOs, dto)
	}
	nfts, err := nftsToDomain(nftDTOs)
	if err != nil {
		return ports.Snapshot{}, err
	}
	snapshot.NFTs = nfts

	snapshot.Escrow = escrow.NewLedger(store.escrow)

	return snapshot, nil
}

func (r *SnapshotRepository) Replace(_ context.Context, snapshot ports.Snapshot) error {
	if err := r.uow.check(); err != nil {
		return err
	}

	deliveries := make(map[string]deliveryDTO, len(snapshot.Deliveries))
	for _, d := range snapshot.Deliveries {
		if err := d.Validate(); err != nil {
			return err
		}
		key := d.ID().String()
		if _, dup := deliveries[key]; dup {
			return errors.New("snapshot contains delivery " + key + " twice")
		}
		deliveries[key] = deliveryFromDomain(d)
	}

	nfts := make(map[string]nftDTO, len(snapshot.NFTs))
	for _, n := range snapshot.NFTs {
		if err := n.Validate(); err != nil {
			return err
		}
		key := n.ID().String()
		if _, dup := nfts[key]; dup {
			return errors.New("snapshot contains nft " + key + " twice")
		}
		nfts[key] = nftFromDomain(n)
	}

	store := r.uow.store
	prevDeliveries, prevNfts, prevEscrow := store.deliveries, store.nfts, store.escrow
	store.deliveries, store.nfts, store.escrow = deliveries, nfts, snapshot.Escrow.Balance()

	r.uow.journal(func() {
		store.deliveries, store.nfts, store.escrow = prevDeliveries, prevNfts, prevEscrow
	})
	return nil
}
