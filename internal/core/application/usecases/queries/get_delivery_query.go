package queries

import (
	"errors"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery looks up one delivery by id.
//
// Example:
//
//	query, err := NewGetDeliveryQuery(id)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
type GetDeliveryQuery struct {
	deliveryID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.ID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.ID {
	return q.deliveryID
}
