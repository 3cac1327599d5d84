package notification_test

import (
	"testing"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	buyer := kernel.MustNewIdentity("B")

	t.Run("should create unread notification with fresh id", func(t *testing.T) {
		a, err := notification.NewNotification(buyer, "hello", notification.Info, now)
		require.NoError(t, err)
		b, err := notification.NewNotification(buyer, "hello", notification.Info, now)
		require.NoError(t, err)

		require.NoError(t, a.Validate())
		assert.False(t, a.ID().IsEqual(b.ID()))
		assert.True(t, a.Recipient().IsEqual(buyer))
		assert.Equal(t, "hello", a.Message())
		assert.Equal(t, notification.Info, a.Category())
		assert.Equal(t, now, a.CreatedAt())
		assert.False(t, a.Read())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := notification.NewNotification(buyer, "hello", notification.Category("alert"), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing recipient and message", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.Identity{}, "", notification.Success, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "recipient")
		assert.Contains(t, err.Error(), "message")
	})
}

func TestRestoreNotification(t *testing.T) {
	id := kernel.NewUUID()

	n, err := notification.RestoreNotification(id, kernel.MustNewIdentity("S"), "x", notification.Success, time.Time{})

	require.NoError(t, err)
	assert.True(t, n.ID().IsEqual(id))

	_, err = notification.RestoreNotification(kernel.UUID{}, kernel.MustNewIdentity("S"), "x", notification.Success, time.Time{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMessages(t *testing.T) {
	id := kernel.MustNewID("D1")

	assert.Equal(t, "Your delivery D1 is now in transit!", notification.InTransitMessage(id))
	assert.Equal(t, "Your delivery D1 is now delivered! OTP generated.", notification.DeliveredMessage(id))
	assert.Equal(t, "Delivery D1 has been confirmed by the buyer!", notification.ConfirmedSellerMessage(id))
	assert.Equal(t, "You have confirmed delivery D1!", notification.ConfirmedBuyerMessage(id))
	assert.Equal(t, "NFT minted for delivery D1!", notification.MintedMessage(id))
	assert.Equal(t, "Escrow released for delivery D1!", notification.EscrowReleasedMessage(id))
}

func TestParseCategory(t *testing.T) {
	c, err := notification.ParseCategory("success")
	require.NoError(t, err)
	assert.Equal(t, notification.Success, c)

	_, err = notification.ParseCategory("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
