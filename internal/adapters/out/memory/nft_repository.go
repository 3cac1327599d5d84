package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/pkg/errs"
)

// NftRepository implements ports.NftRepository on a Store.
type NftRepository struct {
	uow *UnitOfWork
}

func (r *NftRepository) Add(_ context.Context, artifact *nft.DeliveryNFT) error {
	if err := errors.Join(r.uow.check(), artifact.Validate()); err != nil {
		return err
	}

	nfts := r.uow.store.nfts
	key := artifact.ID().String()
	if _, exists := nfts[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("nft id", errors.New("nft "+key+" already exists"))
	}

	nfts[key] = nftFromDomain(artifact)
	r.uow.journal(func() { delete(nfts, key) })
	return nil
}

func (r *NftRepository) Get(_ context.Context, id kernel.ID) (*nft.DeliveryNFT, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}

	dto, ok := r.uow.store.nfts[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("nft", id.String())
	}
	return nftToDomain(dto)
}

func (r *NftRepository) GetByOwner(_ context.Context, owner kernel.Identity) ([]*nft.DeliveryNFT, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}

	dtos := make([]nftDTO, 0)
	for _, dto := range r.uow.store.nfts {
		if dto.Owner == owner.String() {
			dtos = append(dtos, dto)
		}
	}
	return nftsToDomain(dtos)
}

func nftsToDomain(dtos []nftDTO) ([]*nft.DeliveryNFT, error) {
	slices.SortFunc(dtos, func(a, b nftDTO) int {
		return cmp.Or(a.MintedAt.Compare(b.MintedAt), cmp.Compare(a.ID, b.ID))
	})

	result := make([]*nft.DeliveryNFT, 0, len(dtos))
	for _, dto := range dtos {
		n, err := nftToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
