package errs

import "errors"

// Kind names one class of the error taxonomy.
type Kind string

const (
	KindNotFound     Kind = "NotFound"
	KindUnauthorized Kind = "Unauthorized"
	KindInvalidState Kind = "InvalidState"
	KindInvalidInput Kind = "InvalidInput"
	KindOtpMismatch  Kind = "OtpMismatch"
	KindOtpExpired   Kind = "OtpExpired"
	KindInternal     Kind = "Internal"

	// KindArtifactNotMinted is a partial success: the confirmation committed.
	KindArtifactNotMinted Kind = "ArtifactNotMinted"
)

// KindOf classifies err. A joined error takes the first kind, in declaration order, that any member matches.
// ArtifactNotMinted wins over the kind of its cause.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArtifactNotMinted):
		return KindArtifactNotMinted
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsRequired):
		return KindInvalidInput
	case errors.Is(err, ErrOtpMismatch):
		return KindOtpMismatch
	case errors.Is(err, ErrOtpExpired):
		return KindOtpExpired
	default:
		return KindInternal
	}
}
