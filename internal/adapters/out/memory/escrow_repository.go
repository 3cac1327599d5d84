package memory

import (
	"context"

	"proofparcel/internal/core/domain/model/escrow"
)

// EscrowRepository implements ports.EscrowRepository on a Store.
type EscrowRepository struct {
	uow *UnitOfWork
}

func (r *EscrowRepository) Get(_ context.Context) (escrow.Ledger, error) {
	if err := r.uow.check(); err != nil {
		return escrow.Ledger{}, err
	}
	return escrow.NewLedger(r.uow.store.escrow), nil
}

func (r *EscrowRepository) Save(_ context.Context, ledger escrow.Ledger) error {
	if err := r.uow.check(); err != nil {
		return err
	}

	store := r.uow.store
	prev := store.escrow
	store.escrow = ledger.Balance()
	r.uow.journal(func() { store.escrow = prev })
	return nil
}
