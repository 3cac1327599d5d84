package services

import (
	"time"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/pkg/errs"
)

// NftMinter builds the receipt artifact for a confirmed delivery. The artifact
// is owned by the buyer and records the delivery as it was confirmed.
type NftMinter struct{}

func NewNftMinter() NftMinter {
	return NftMinter{}
}

// Mint builds artifact id for d. The delivery must have been confirmed; it may
// already have had its escrow released.
func (NftMinter) Mint(id kernel.ID, d *delivery.Delivery, now time.Time) (*nft.DeliveryNFT, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	confirmedAt, ok := d.ConfirmedAt()
	if !ok {
		return nil, errs.NewInvalidStateError("mint nft", d.Status().String(), delivery.Confirmed.String())
	}

	metadata, err := nft.Metadata{
		DeliveryID:  d.ID().String(),
		Description: d.Description(),
		Amount:      d.Amount(),
		ConfirmedAt: confirmedAt.Unix(),
		Seller:      d.Seller().String(),
		Buyer:       d.Buyer().String(),
	}.Encode()
	if err != nil {
		return nil, err
	}

	return nft.NewDeliveryNFT(id, d.ID(), d.Buyer(), metadata, now)
}
