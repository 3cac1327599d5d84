package queries

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/guard"
)

var ErrGetNftQueryIsNotConstructed = errors.New(
	"GetNftQuery must be created via NewGetNftQuery constructor",
)

// GetNftQuery looks up one receipt artifact by id.
type GetNftQuery struct {
	nftID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetNftQuery(nftID kernel.ID) (GetNftQuery, error) {
	if err := nftID.Validate(); err != nil {
		return GetNftQuery{}, err
	}
	return GetNftQuery{
		nftID: nftID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetNftQuery) Validate() error {
	return q.guard.Validate(ErrGetNftQueryIsNotConstructed)
}

func (q GetNftQuery) NftID() kernel.ID {
	return q.nftID
}
