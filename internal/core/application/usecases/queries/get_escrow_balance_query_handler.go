package queries

import (
	"context"
)

type GetEscrowBalanceQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetEscrowBalanceQueryHandler(uowFactory ReadUoWFactory) GetEscrowBalanceQueryHandler {
	return GetEscrowBalanceQueryHandler{uowFactory: uowFactory}
}

func (h GetEscrowBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetEscrowBalanceQuery,
) (EscrowBalanceResponse, error) {
	if err := query.Validate(); err != nil {
		return EscrowBalanceResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) (EscrowBalanceResponse, error) {
		ledger, err := uow.EscrowRepository().Get(ctx)
		if err != nil {
			return EscrowBalanceResponse{}, err
		}
		return EscrowBalanceResponse{Balance: ledger.Balance()}, nil
	})
}
