package queries

import (
	"context"

	"proofparcel/internal/core/domain/model/delivery"
)

type ListDeliveriesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListDeliveriesQueryHandler(uowFactory ReadUoWFactory) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{uowFactory: uowFactory}
}

// Handle returns an empty slice, never nil, when nothing matches.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]DeliveryResponse, error) {
		repo := uow.DeliveryRepository()

		var (
			deliveries []*delivery.Delivery
			err        error
		)
		switch query.Party() {
		case SellerParty:
			deliveries, err = repo.GetBySeller(ctx, query.Identity())
		case BuyerParty:
			deliveries, err = repo.GetByBuyer(ctx, query.Identity())
		default:
			deliveries, err = repo.GetAll(ctx)
		}
		if err != nil {
			return nil, err
		}

		return newDeliveryResponses(deliveries), nil
	})
}
