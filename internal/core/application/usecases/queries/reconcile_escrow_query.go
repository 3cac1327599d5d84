package queries

import (
	"errors"

	"proofparcel/internal/pkg/guard"
)

var ErrReconcileEscrowQueryIsNotConstructed = errors.New(
	"ReconcileEscrowQuery must be created via NewReconcileEscrowQuery constructor",
)

// ReconcileEscrowQuery compares the escrow ledger with the sum of amounts of
// deliveries that still hold escrow. Both are read in one unit of work.
type ReconcileEscrowQuery struct {
	guard guard.ConstructorGuard
}

func NewReconcileEscrowQuery() ReconcileEscrowQuery {
	return ReconcileEscrowQuery{guard: guard.NewConstructorGuard()}
}

func (q ReconcileEscrowQuery) Validate() error {
	return q.guard.Validate(ErrReconcileEscrowQueryIsNotConstructed)
}

type ReconcileEscrowResponse struct {
	Ledger   uint64 `json:"ledger"`
	Expected uint64 `json:"expected"`
	Balanced bool   `json:"balanced"`
}

// Drift is the ledger minus the expected balance.
func (r ReconcileEscrowResponse) Drift() float64 {
	return float64(r.Ledger) - float64(r.Expected)
}
