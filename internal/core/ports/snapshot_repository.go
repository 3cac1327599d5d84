package ports

import (
	"context"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/domain/model/nft"
)

// Snapshot is the durable subset of the service state: everything except
// notifications.
type Snapshot struct {
	Deliveries []*delivery.Delivery
	NFTs       []*nft.DeliveryNFT
	Escrow     escrow.Ledger
}

// SnapshotRepository exports and wholesale replaces the durable state.
type SnapshotRepository interface {
	// Export returns deliveries ordered by creation time and NFTs by mint time.
	Export(ctx context.Context) (Snapshot, error)

	// Replace discards every delivery, NFT and the ledger and installs snapshot.
	// Notifications are left untouched.
	Replace(ctx context.Context, snapshot Snapshot) error
}
