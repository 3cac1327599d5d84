package queries

import (
	"context"

	"proofparcel/internal/core/domain/model/escrow"
)

type ReconcileEscrowQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewReconcileEscrowQueryHandler(uowFactory ReadUoWFactory) ReconcileEscrowQueryHandler {
	return ReconcileEscrowQueryHandler{uowFactory: uowFactory}
}

func (h ReconcileEscrowQueryHandler) Handle(
	ctx context.Context,
	query ReconcileEscrowQuery,
) (ReconcileEscrowResponse, error) {
	if err := query.Validate(); err != nil {
		return ReconcileEscrowResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) (ReconcileEscrowResponse, error) {
		ledger, err := uow.EscrowRepository().Get(ctx)
		if err != nil {
			return ReconcileEscrowResponse{}, err
		}

		deliveries, err := uow.DeliveryRepository().GetAll(ctx)
		if err != nil {
			return ReconcileEscrowResponse{}, err
		}

		expected, err := escrow.Expected(deliveries)
		if err != nil {
			return ReconcileEscrowResponse{}, err
		}

		return ReconcileEscrowResponse{
			Ledger:   ledger.Balance(),
			Expected: expected.Balance(),
			Balanced: ledger.Balance() == expected.Balance(),
		}, nil
	})
}
