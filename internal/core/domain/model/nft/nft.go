package nft

import (
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrDeliveryNFTIsNotConstructed = errors.New("DeliveryNFT must be created via NewDeliveryNFT")

// DeliveryNFT is the receipt for one confirmed delivery, owned by its buyer.
type DeliveryNFT struct {
	id         kernel.ID
	deliveryID kernel.ID
	owner      kernel.Identity
	metadata   string
	mintedAt   time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryNFT builds an artifact. It is also used to rehydrate persisted
// artifacts since nothing about an artifact changes after minting.
func NewDeliveryNFT(
	id kernel.ID,
	deliveryID kernel.ID,
	owner kernel.Identity,
	metadata string,
	mintedAt time.Time,
) (*DeliveryNFT, error) {
	var errMetadata error
	if metadata == "" {
		errMetadata = errs.NewValueIsRequiredError("nft metadata")
	}
	var errMintedAt error
	if mintedAt.IsZero() {
		errMintedAt = errs.NewValueIsRequiredError("nft minted at")
	}
	var errOwner error
	if err := owner.Validate(); err != nil {
		errOwner = errs.NewValueIsRequiredErrorWithCause("nft owner", err)
	}

	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		errOwner,
		errMetadata,
		errMintedAt,
	); err != nil {
		return nil, err
	}

	return &DeliveryNFT{
		id:         id,
		deliveryID: deliveryID,
		owner:      owner,
		metadata:   metadata,
		mintedAt:   mintedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (n *DeliveryNFT) Validate() error {
	if n == nil {
		return ErrDeliveryNFTIsNotConstructed
	}
	return n.guard.Validate(ErrDeliveryNFTIsNotConstructed)
}

func (n *DeliveryNFT) ID() kernel.ID {
	return n.id
}

func (n *DeliveryNFT) DeliveryID() kernel.ID {
	return n.deliveryID
}

func (n *DeliveryNFT) Owner() kernel.Identity {
	return n.owner
}

// Metadata returns the JSON blob as stored.
func (n *DeliveryNFT) Metadata() string {
	return n.metadata
}

func (n *DeliveryNFT) MintedAt() time.Time {
	return n.mintedAt
}
