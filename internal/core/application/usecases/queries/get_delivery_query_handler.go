package queries

import (
	"context"
)

type GetDeliveryQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetDeliveryQueryHandler(uowFactory ReadUoWFactory) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown id.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) (DeliveryResponse, error) {
		d, err := uow.DeliveryRepository().Get(ctx, query.DeliveryID())
		if err != nil {
			return DeliveryResponse{}, err
		}
		return newDeliveryResponse(d), nil
	})
}
