package queries

import (
	"errors"

	"proofparcel/internal/pkg/guard"
)

var ErrGetEscrowBalanceQueryIsNotConstructed = errors.New(
	"GetEscrowBalanceQuery must be created via NewGetEscrowBalanceQuery constructor",
)

// GetEscrowBalanceQuery reads the escrow ledger.
type GetEscrowBalanceQuery struct {
	guard guard.ConstructorGuard
}

func NewGetEscrowBalanceQuery() GetEscrowBalanceQuery {
	return GetEscrowBalanceQuery{guard: guard.NewConstructorGuard()}
}

func (q GetEscrowBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetEscrowBalanceQueryIsNotConstructed)
}

type EscrowBalanceResponse struct {
	Balance uint64 `json:"balance"`
}
