package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrOtpMismatch       = errors.New("otp mismatch")
	ErrOtpExpired        = errors.New("otp expired")
	ErrArtifactNotMinted = errors.New("artifact not minted")
)

// ObjectNotFoundError reports an unknown identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports input that violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError reports arithmetic leaving the range of a counter.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s is %v, valid range is [%v, %v]",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// VersionIsInvalidError reports a schema tag or version that cannot be read.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnauthorizedError reports a caller that does not hold the role an action requires.
type UnauthorizedError struct {
	Action string
	Role   string
}

func NewUnauthorizedError(action, role string) *UnauthorizedError {
	return &UnauthorizedError{
		Action: action,
		Role:   role,
	}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: only the %s can %s", ErrUnauthorized, e.Role, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateError reports a transition requested from the wrong status.
type InvalidStateError struct {
	Action   string
	Current  string
	Required string
}

func NewInvalidStateError(action, current, required string) *InvalidStateError {
	return &InvalidStateError{
		Action:   action,
		Current:  current,
		Required: required,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s in status %s, status must be %s",
		ErrInvalidState, e.Action, e.Current, e.Required)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// OtpMismatchError reports a supplied code that differs from the stored one.
type OtpMismatchError struct{}

func NewOtpMismatchError() *OtpMismatchError {
	return &OtpMismatchError{}
}

func (e *OtpMismatchError) Error() string {
	return fmt.Sprintf("%s: supplied code does not match", ErrOtpMismatch)
}

func (e *OtpMismatchError) Unwrap() error {
	return ErrOtpMismatch
}

// OtpExpiredError reports a code used after its expiry.
type OtpExpiredError struct {
	ExpiresAt time.Time
}

func NewOtpExpiredError(expiresAt time.Time) *OtpExpiredError {
	return &OtpExpiredError{ExpiresAt: expiresAt}
}

func (e *OtpExpiredError) Error() string {
	return fmt.Sprintf("%s: code expired at %s", ErrOtpExpired, e.ExpiresAt.UTC().Format(time.RFC3339))
}

func (e *OtpExpiredError) Unwrap() error {
	return ErrOtpExpired
}

// ArtifactNotMintedError reports a confirmation that committed while minting its
// receipt artifact failed. The delivery stays Confirmed.
type ArtifactNotMintedError struct {
	DeliveryID any
	Cause      error
}

func NewArtifactNotMintedError(deliveryID any, cause error) *ArtifactNotMintedError {
	return &ArtifactNotMintedError{
		DeliveryID: deliveryID,
		Cause:      cause,
	}
}

func (e *ArtifactNotMintedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("delivery %s confirmed, %s (cause: %v)", sanitize(e.DeliveryID), ErrArtifactNotMinted, e.Cause)
	}
	return fmt.Sprintf("delivery %s confirmed, %s", sanitize(e.DeliveryID), ErrArtifactNotMinted)
}

func (e *ArtifactNotMintedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrArtifactNotMinted}
	}
	return []error{ErrArtifactNotMinted, e.Cause}
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
