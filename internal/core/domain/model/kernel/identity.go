package kernel

import (
	"strings"

	"proofparcel/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed is returned when validating a zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError("identity must be created via NewIdentity")

// Identity is the opaque reference of a caller. The authentication layer in front
// of the service decides what it looks like; the domain only compares identities.
//
// Example:
//
//	seller, err := kernel.NewIdentity("2vxsx-fae")
//	if err != nil {
//	    return err
//	}
//	if !seller.IsEqual(d.Seller()) {
//	    // not the seller of d
//	}
type Identity struct {
	value string
}

// NewIdentity builds an Identity from its text form. Surrounding whitespace is
// significant to the caller's authenticator, so it is rejected rather than trimmed.
func NewIdentity(value string) (Identity, error) {
	if value == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity")
	}
	if strings.TrimSpace(value) != value {
		return Identity{}, errs.NewValueIsInvalidError("identity has surrounding whitespace")
	}
	return Identity{value: value}, nil
}

// MustNewIdentity is NewIdentity for literals known to be valid; it panics otherwise.
func MustNewIdentity(value string) Identity {
	id, err := NewIdentity(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (i Identity) String() string {
	return i.value
}

func (i Identity) IsEqual(other Identity) bool {
	return i.value == other.value
}

// Validate returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.value == "" {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
