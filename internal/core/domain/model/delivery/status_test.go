package delivery_test

import (
	"testing"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status delivery.Status
		want   string
	}{
		{delivery.Unknown, "Unknown"},
		{delivery.Pending, "Pending"},
		{delivery.InTransit, "InTransit"},
		{delivery.Delivered, "Delivered"},
		{delivery.Confirmed, "Confirmed"},
		{delivery.EscrowReleased, "EscrowReleased"},
		{delivery.Cancelled, "Cancelled"},
		{delivery.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending, delivery.InTransit, delivery.Delivered,
			delivery.Confirmed, delivery.EscrowReleased, delivery.Cancelled,
		} {
			parsed, err := delivery.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := delivery.ParseStatus("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, delivery.Cancelled.Validate())
	require.Error(t, delivery.Unknown.Validate())
	require.Error(t, delivery.Status(-1).Validate())
}

func TestStatus_HoldsEscrow(t *testing.T) {
	assert.True(t, delivery.Pending.HoldsEscrow())
	assert.True(t, delivery.InTransit.HoldsEscrow())
	assert.True(t, delivery.Delivered.HoldsEscrow())
	assert.True(t, delivery.Confirmed.HoldsEscrow())
	assert.False(t, delivery.EscrowReleased.HoldsEscrow())
	assert.False(t, delivery.Cancelled.HoldsEscrow())
	assert.False(t, delivery.Unknown.HoldsEscrow())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(delivery.Status) (delivery.Status, error)

	testCases := []struct {
		name string
		do   transition
		from delivery.Status
		to   delivery.Status
	}{
		{"start", delivery.Status.Start, delivery.Pending, delivery.InTransit},
		{"deliver", delivery.Status.Deliver, delivery.InTransit, delivery.Delivered},
		{"confirm", delivery.Status.Confirm, delivery.Delivered, delivery.Confirmed},
		{"release", delivery.Status.ReleaseEscrow, delivery.Confirmed, delivery.EscrowReleased},
	}

	all := []delivery.Status{
		delivery.Unknown, delivery.Pending, delivery.InTransit, delivery.Delivered,
		delivery.Confirmed, delivery.EscrowReleased, delivery.Cancelled,
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, from := range all {
				next, err := tc.do(from)
				if from == tc.from {
					require.NoError(t, err)
					assert.Equal(t, tc.to, next)
					continue
				}
				require.ErrorIs(t, err, errs.ErrInvalidState, "from %s", from)
				assert.Equal(t, delivery.Unknown, next)
			}
		})
	}

	t.Run("nothing enters cancelled", func(t *testing.T) {
		for _, from := range all {
			assert.False(t, from.CanTransitionTo(delivery.Cancelled))
		}
	})
}
