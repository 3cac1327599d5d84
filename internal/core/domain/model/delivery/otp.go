package delivery

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

const (
	// OtpTTL is how long an issued code stays valid.
	OtpTTL = time.Hour

	// OtpLength is the number of decimal digits in a code.
	OtpLength = 6
)

var ErrOtpIsNotConstructed = errors.New("Otp must be created via NewOtp or RestoreOtp")

// Otp is a one-time code bound to a single delivery together with its expiry.
// Verifying a code does not consume it; once the delivery leaves Delivered the
// code is simply never checked again.
type Otp struct {
	code      string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewOtp issues code at issuedAt; it expires OtpTTL later.
func NewOtp(code string, issuedAt time.Time) (Otp, error) {
	return RestoreOtp(code, issuedAt.Add(OtpTTL))
}

// RestoreOtp rebuilds a previously issued code.
func RestoreOtp(code string, expiresAt time.Time) (Otp, error) {
	if err := validateCode(code); err != nil {
		return Otp{}, err
	}
	if expiresAt.IsZero() {
		return Otp{}, errs.NewValueIsRequiredError("otp expiry")
	}

	return Otp{
		code:      code,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (o Otp) Validate() error {
	return o.guard.Validate(ErrOtpIsNotConstructed)
}

func (o Otp) Code() string {
	return o.code
}

func (o Otp) ExpiresAt() time.Time {
	return o.expiresAt
}

// Verify checks a supplied code at time now. The expiry second itself is still valid.
func (o Otp) Verify(code string, now time.Time) error {
	if subtle.ConstantTimeCompare([]byte(code), []byte(o.code)) != 1 {
		return errs.NewOtpMismatchError()
	}
	if now.After(o.expiresAt) {
		return errs.NewOtpExpiredError(o.expiresAt)
	}
	return nil
}

func validateCode(code string) error {
	if len(code) != OtpLength {
		return errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("code must have %d digits", OtpLength))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("%q is not a digit", r))
		}
	}
	return nil
}
