package memory

import (
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
)

type nftDTO struct {
	ID         string
	DeliveryID string
	Owner      string
	Metadata   string
	MintedAt   time.Time
}

func nftFromDomain(n *nft.DeliveryNFT) nftDTO {
	return nftDTO{
		ID:         n.ID().String(),
		DeliveryID: n.DeliveryID().String(),
		Owner:      n.Owner().String(),
		Metadata:   n.Metadata(),
		MintedAt:   n.MintedAt(),
	}
}

func nftToDomain(dto nftDTO) (*nft.DeliveryNFT, error) {
	id, errID := kernel.NewID(dto.ID)
	deliveryID, errDeliveryID := kernel.NewID(dto.DeliveryID)
	owner, errOwner := kernel.NewIdentity(dto.Owner)
	if err := errors.Join(errID, errDeliveryID, errOwner); err != nil {
		return nil, err
	}
	return nft.NewDeliveryNFT(id, deliveryID, owner, dto.Metadata, dto.MintedAt)
}
