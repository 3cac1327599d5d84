package ports

import (
	"context"

	"proofparcel/internal/core/domain/model/escrow"
)

// EscrowRepository holds the single escrow ledger.
type EscrowRepository interface {
	Get(ctx context.Context) (escrow.Ledger, error)
	Save(ctx context.Context, ledger escrow.Ledger) error
}
