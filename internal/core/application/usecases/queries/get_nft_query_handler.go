package queries

import (
	"context"
)

type GetNftQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetNftQueryHandler(uowFactory ReadUoWFactory) GetNftQueryHandler {
	return GetNftQueryHandler{uowFactory: uowFactory}
}

func (h GetNftQueryHandler) Handle(ctx context.Context, query GetNftQuery) (NftResponse, error) {
	if err := query.Validate(); err != nil {
		return NftResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) (NftResponse, error) {
		artifact, err := uow.NftRepository().Get(ctx, query.NftID())
		if err != nil {
			return NftResponse{}, err
		}
		return newNftResponse(artifact), nil
	})
}
