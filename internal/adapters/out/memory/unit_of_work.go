package memory

import (
	"context"
	"errors"

	"proofparcel/internal/core/ports"
)

// ErrNoTransaction is returned when a unit of work is used outside Begin/Commit.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWork is a single-use transaction over a Store. It is not safe for
// concurrent use by several goroutines.
type UnitOfWork struct {
	store  *Store
	active bool
	undo   []func()
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// Begin waits for exclusive access to the store. Calling Begin on an active
// unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	select {
	case uow.store.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	uow.active = true
	uow.undo = nil
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}

	uow.release()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}

	for i := len(uow.undo) - 1; i >= 0; i-- {
		uow.undo[i]()
	}
	uow.release()
	return nil
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{uow: uow}
}

func (uow *UnitOfWork) NftRepository() ports.NftRepository {
	return &NftRepository{uow: uow}
}

func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{uow: uow}
}

func (uow *UnitOfWork) EscrowRepository() ports.EscrowRepository {
	return &EscrowRepository{uow: uow}
}

func (uow *UnitOfWork) SnapshotRepository() ports.SnapshotRepository {
	return &SnapshotRepository{uow: uow}
}

// journal records how to revert a write that has just been applied.
func (uow *UnitOfWork) journal(revert func()) {
	uow.undo = append(uow.undo, revert)
}

func (uow *UnitOfWork) check() error {
	if !uow.active {
		return ErrNoTransaction
	}
	return nil
}

func (uow *UnitOfWork) release() {
	uow.undo = nil
	uow.active = false
	<-uow.store.slot
}
