package notification

import (
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is one message addressed to a single identity.
type Notification struct {
	id        kernel.UUID
	recipient kernel.Identity
	message   string
	category  Category
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates a notification with a fresh id.
func NewNotification(recipient kernel.Identity, message string, category Category, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), recipient, message, category, createdAt)
}

// RestoreNotification rebuilds a stored notification.
func RestoreNotification(
	id kernel.UUID,
	recipient kernel.Identity,
	message string,
	category Category,
	createdAt time.Time,
) (*Notification, error) {
	var errRecipient error
	if err := recipient.Validate(); err != nil {
		errRecipient = errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	var errMessage error
	if message == "" {
		errMessage = errs.NewValueIsRequiredError("message")
	}
	_, errCategory := ParseCategory(string(category))

	if err := errors.Join(id.Validate(), errRecipient, errMessage, errCategory); err != nil {
		return nil, err
	}

	return &Notification{
		id:        id,
		recipient: recipient,
		message:   message,
		category:  category,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) Recipient() kernel.Identity {
	return n.recipient
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Category() Category {
	return n.category
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Read is always false: nothing in the service marks notifications as read.
func (n *Notification) Read() bool {
	return false
}
