// Package errs provides the typed error taxonomy of the escrow delivery service.
// Every business-rule violation returned by a public operation is one of these
// types, so transports can map a failure to a concrete kind without parsing text.
//
// The package includes:
//   - ObjectNotFoundError: an unknown delivery or artifact identifier
//   - UnauthorizedError: the caller does not hold the role a transition requires
//   - InvalidStateError: the delivery is not in the status a transition requires
//   - ValueIsInvalidError, ValueIsRequiredError: rejected input
//   - OtpMismatchError, OtpExpiredError: one-time code verification failures
//   - VersionIsInvalidError: an unreadable checkpoint schema or version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
//
// KindOf classifies any error into one of the taxonomy kinds; errors outside the
// taxonomy are KindInternal and are treated as infrastructure failures.
package errs
