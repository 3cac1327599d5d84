package ports

import (
	"context"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
)

// NotificationRepository is the append-only per-identity notification log.
type NotificationRepository interface {
	Append(ctx context.Context, n *notification.Notification) error

	// GetByRecipient returns notifications in append order. An identity with no
	// notifications gets an empty slice.
	GetByRecipient(ctx context.Context, recipient kernel.Identity) ([]*notification.Notification, error)
}

// NotificationPublisher forwards committed notifications to an external transport.
type NotificationPublisher interface {
	Publish(ctx context.Context, notifications ...*notification.Notification) error
}
