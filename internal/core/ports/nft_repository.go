package ports

import (
	"context"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
)

// NftRepository stores receipt artifacts. Artifacts are never updated.
type NftRepository interface {
	Add(ctx context.Context, artifact *nft.DeliveryNFT) error

	// Get returns errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id kernel.ID) (*nft.DeliveryNFT, error)

	// GetByOwner orders results by mint time, then id.
	GetByOwner(ctx context.Context, owner kernel.Identity) ([]*nft.DeliveryNFT, error)
}
