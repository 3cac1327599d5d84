package delivery_test

import (
	"testing"
	"time"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOtp(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)

	t.Run("expires one hour after issue", func(t *testing.T) {
		otp, err := delivery.NewOtp("482913", issuedAt)

		require.NoError(t, err)
		require.NoError(t, otp.Validate())
		assert.Equal(t, "482913", otp.Code())
		assert.Equal(t, issuedAt.Add(3600*time.Second), otp.ExpiresAt())
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "12345", "1234567", "12a456", "-12345"} {
			_, err := delivery.NewOtp(code, issuedAt)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
		}
	})

	t.Run("restore requires an expiry", func(t *testing.T) {
		_, err := delivery.RestoreOtp("482913", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var otp delivery.Otp
		assert.Equal(t, delivery.ErrOtpIsNotConstructed, otp.Validate())
	})
}

func TestOtp_Verify(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	otp, err := delivery.NewOtp("482913", issuedAt)
	require.NoError(t, err)

	t.Run("matching code before expiry", func(t *testing.T) {
		require.NoError(t, otp.Verify("482913", issuedAt.Add(time.Minute)))
	})

	t.Run("matching code at the expiry second", func(t *testing.T) {
		require.NoError(t, otp.Verify("482913", otp.ExpiresAt()))
	})

	t.Run("matching code one second after expiry", func(t *testing.T) {
		err := otp.Verify("482913", otp.ExpiresAt().Add(time.Second))
		require.ErrorIs(t, err, errs.ErrOtpExpired)
	})

	t.Run("mismatch is reported before expiry", func(t *testing.T) {
		err := otp.Verify("000000", otp.ExpiresAt().Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrOtpMismatch)
	})

	t.Run("verification does not consume the code", func(t *testing.T) {
		require.NoError(t, otp.Verify("482913", issuedAt))
		require.NoError(t, otp.Verify("482913", issuedAt))
	})
}
