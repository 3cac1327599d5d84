package queries

import (
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery reads the notification log of one identity in the
// order the notifications were recorded.
type GetNotificationsQuery struct {
	recipient kernel.Identity

	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(recipient kernel.Identity) (GetNotificationsQuery, error) {
	if err := recipient.Validate(); err != nil {
		return GetNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	return GetNotificationsQuery{
		recipient: recipient,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) Recipient() kernel.Identity {
	return q.recipient
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

func newNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID().String(),
		Recipient: n.Recipient().String(),
		Message:   n.Message(),
		Category:  n.Category().String(),
		CreatedAt: n.CreatedAt(),
		Read:      n.Read(),
	}
}
