package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is an exclusive, all-or-nothing view of the store. Begin blocks
// until no other unit of work is active; writes made through the repositories
// become visible to others only on Commit.
type UnitOfWork interface {
	// Begin acquires exclusive access. It fails if ctx ends first.
	Begin(ctx context.Context) error

	// Commit publishes staged writes and releases access.
	Commit(ctx context.Context) error

	// Rollback discards staged writes and releases access. It returns an error
	// when there is no active transaction, so it is safe to defer after Commit.
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	NftRepository() NftRepository
	NotificationRepository() NotificationRepository
	EscrowRepository() EscrowRepository
	SnapshotRepository() SnapshotRepository
}
