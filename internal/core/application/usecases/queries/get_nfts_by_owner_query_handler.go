package queries

import (
	"context"
)

type GetNftsByOwnerQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetNftsByOwnerQueryHandler(uowFactory ReadUoWFactory) GetNftsByOwnerQueryHandler {
	return GetNftsByOwnerQueryHandler{uowFactory: uowFactory}
}

func (h GetNftsByOwnerQueryHandler) Handle(ctx context.Context, query GetNftsByOwnerQuery) ([]NftResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]NftResponse, error) {
		artifacts, err := uow.NftRepository().GetByOwner(ctx, query.Owner())
		if err != nil {
			return nil, err
		}

		responses := make([]NftResponse, 0, len(artifacts))
		for _, artifact := range artifacts {
			responses = append(responses, newNftResponse(artifact))
		}
		return responses, nil
	})
}
