package commands

import (
	"context"
	"log/slog"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/ports"
)

// Notifier records notifications inside a unit of work and forwards them to
// the external publisher once the unit of work has committed. Publishing is
// best effort: a failure is logged and never undoes the committed transition.
type Notifier struct {
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewNotifier accepts a nil publisher, in which case nothing is forwarded.
func NewNotifier(publisher ports.NotificationPublisher, logger *slog.Logger) Notifier {
	return Notifier{
		publisher: publisher,
		logger:    logger.With("component", "Notifier"),
	}
}

type message struct {
	recipient kernel.Identity
	text      string
	category  notification.Category
}

func (n Notifier) record(
	ctx context.Context,
	repo ports.NotificationRepository,
	now time.Time,
	messages ...message,
) ([]*notification.Notification, error) {
	recorded := make([]*notification.Notification, 0, len(messages))
	for _, m := range messages {
		nt, err := notification.NewNotification(m.recipient, m.text, m.category, now)
		if err != nil {
			return nil, err
		}
		if err = repo.Append(ctx, nt); err != nil {
			return nil, err
		}
		recorded = append(recorded, nt)
	}
	return recorded, nil
}

// publish must only be called after the recording unit of work committed.
func (n Notifier) publish(ctx context.Context, notifications []*notification.Notification) {
	if n.publisher == nil || len(notifications) == 0 {
		return
	}
	if err := n.publisher.Publish(ctx, notifications...); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish notifications",
			"count", len(notifications), "error", err)
	}
}
