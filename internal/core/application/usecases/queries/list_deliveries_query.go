package queries

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via one of the NewGet*DeliveriesQuery constructors",
)

// Party selects which deliveries ListDeliveriesQuery returns.
type Party int

const (
	AnyParty Party = iota
	SellerParty
	BuyerParty
)

// ListDeliveriesQuery lists deliveries ordered by creation time, then id,
// optionally restricted to those where an identity is the seller or the buyer.
type ListDeliveriesQuery struct {
	party    Party
	identity kernel.Identity

	guard guard.ConstructorGuard
}

func NewGetAllDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{
		party: AnyParty,
		guard: guard.NewConstructorGuard(),
	}
}

func NewGetDeliveriesBySellerQuery(seller kernel.Identity) (ListDeliveriesQuery, error) {
	return newPartyQuery(SellerParty, seller, "seller")
}

func NewGetDeliveriesByBuyerQuery(buyer kernel.Identity) (ListDeliveriesQuery, error) {
	return newPartyQuery(BuyerParty, buyer, "buyer")
}

func newPartyQuery(party Party, identity kernel.Identity, name string) (ListDeliveriesQuery, error) {
	if err := identity.Validate(); err != nil {
		return ListDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return ListDeliveriesQuery{
		party:    party,
		identity: identity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Party() Party {
	return q.party
}

func (q ListDeliveriesQuery) Identity() kernel.Identity {
	return q.identity
}
