package memory

import (
	"context"
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
)

type notificationDTO struct {
	ID        string
	Message   string
	Category  string
	CreatedAt time.Time
}

// NotificationRepository implements ports.NotificationRepository on a Store.
type NotificationRepository struct {
	uow *UnitOfWork
}

func (r *NotificationRepository) Append(_ context.Context, n *notification.Notification) error {
	if err := errors.Join(r.uow.check(), n.Validate()); err != nil {
		return err
	}

	logs := r.uow.store.notifications
	key := n.Recipient().String()
	prevLen := len(logs[key])

	logs[key] = append(logs[key], notificationDTO{
		ID:        n.ID().String(),
		Message:   n.Message(),
		Category:  n.Category().String(),
		CreatedAt: n.CreatedAt(),
	})

	r.uow.journal(func() {
		if prevLen == 0 {
			delete(logs, key)
			return
		}
		logs[key] = logs[key][:prevLen]
	})
	return nil
}

func (r *NotificationRepository) GetByRecipient(
	_ context.Context,
	recipient kernel.Identity,
) ([]*notification.Notification, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}

	dtos := r.uow.store.notifications[recipient.String()]
	result := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromString(dto.ID)
		if err != nil {
			return nil, err
		}
		n, err := notification.RestoreNotification(id, recipient, dto.Message,
			notification.Category(dto.Category), dto.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
