package kernel

import (
	"encoding/hex"

	"proofparcel/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromBytes")

// ID identifies a delivery or a receipt artifact. Freshly minted IDs are the
// lowercase hex encoding of random bytes; IDs read back from clients or
// checkpoints are treated as opaque text.
type ID struct {
	value string
}

// NewID wraps an existing identifier.
func NewID(value string) (ID, error) {
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// IDFromBytes hex-encodes random bytes into a new identifier.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) == 0 {
		return ID{}, errs.NewValueIsRequiredError("id bytes")
	}
	return ID{value: hex.EncodeToString(b)}, nil
}

// MustNewID is NewID for literals known to be valid; it panics otherwise.
func MustNewID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) String() string {
	return i.value
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
