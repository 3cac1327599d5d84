package queries

import (
	"time"

	"proofparcel/internal/core/domain/model/nft"
)

type NftResponse struct {
	ID         string    `json:"id"`
	DeliveryID string    `json:"delivery_id"`
	Owner      string    `json:"owner"`
	Metadata   string    `json:"metadata"`
	MintedAt   time.Time `json:"minted_at"`
}

func newNftResponse(n *nft.DeliveryNFT) NftResponse {
	return NftResponse{
		ID:         n.ID().String(),
		DeliveryID: n.DeliveryID().String(),
		Owner:      n.Owner().String(),
		Metadata:   n.Metadata(),
		MintedAt:   n.MintedAt(),
	}
}
