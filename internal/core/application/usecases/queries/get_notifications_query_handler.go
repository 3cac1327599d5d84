package queries

import (
	"context"
)

type GetNotificationsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetNotificationsQueryHandler(uowFactory ReadUoWFactory) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{uowFactory: uowFactory}
}

// Handle returns an empty slice for an identity that has never been notified.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]NotificationResponse, error) {
		notifications, err := uow.NotificationRepository().GetByRecipient(ctx, query.Recipient())
		if err != nil {
			return nil, err
		}

		responses := make([]NotificationResponse, 0, len(notifications))
		for _, n := range notifications {
			responses = append(responses, newNotificationResponse(n))
		}
		return responses, nil
	})
}
