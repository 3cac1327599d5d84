package nft

import (
	"encoding/json"
	"fmt"

	"proofparcel/internal/pkg/errs"
)

// Metadata is the content of the receipt artifact. Field names are part of the
// artifact format.
type Metadata struct {
	DeliveryID  string `json:"delivery_id"`
	Description string `json:"description"`
	Amount      uint64 `json:"amount"`
	ConfirmedAt int64  `json:"confirmed_at"`
	Seller      string `json:"seller"`
	Buyer       string `json:"buyer"`
}

// Encode renders the metadata blob stored on the artifact.
func (m Metadata) Encode() (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode nft metadata: %w", err)
	}
	return string(raw), nil
}

// DecodeMetadata parses a blob produced by Encode.
func DecodeMetadata(blob string) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal([]byte(blob), &m); err != nil {
		return Metadata{}, errs.NewValueIsInvalidErrorWithCause("nft metadata", err)
	}
	return m, nil
}
