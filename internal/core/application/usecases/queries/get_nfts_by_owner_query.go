package queries

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrGetNftsByOwnerQueryIsNotConstructed = errors.New(
	"GetNftsByOwnerQuery must be created via NewGetNftsByOwnerQuery constructor",
)

// GetNftsByOwnerQuery lists the artifacts an identity owns, oldest first.
type GetNftsByOwnerQuery struct {
	owner kernel.Identity

	guard guard.ConstructorGuard
}

func NewGetNftsByOwnerQuery(owner kernel.Identity) (GetNftsByOwnerQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetNftsByOwnerQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	return GetNftsByOwnerQuery{
		owner: owner,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetNftsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetNftsByOwnerQueryIsNotConstructed)
}

func (q GetNftsByOwnerQuery) Owner() kernel.Identity {
	return q.owner
}
