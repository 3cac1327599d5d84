package nft_test

import (
	"encoding/json"
	"testing"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Encode(t *testing.T) {
	// Given
	m := nft.Metadata{
		DeliveryID:  "D1",
		Description: "widget",
		Amount:      1000,
		ConfirmedAt: 1_700_000_180,
		Seller:      "S",
		Buyer:       "B",
	}

	// When
	blob, err := m.Encode()

	// Then
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(blob), &raw))
	assert.ElementsMatch(t,
		[]string{"delivery_id", "description", "amount", "confirmed_at", "seller", "buyer"},
		keys(raw))

	decoded, err := nft.DecodeMetadata(blob)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestDecodeMetadata_Invalid(t *testing.T) {
	_, err := nft.DecodeMetadata("{")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDeliveryNFT(t *testing.T) {
	mintedAt := time.Unix(1_700_000_200, 0).UTC()

	t.Run("should create artifact", func(t *testing.T) {
		n, err := nft.NewDeliveryNFT(kernel.MustNewID("N1"), kernel.MustNewID("D1"),
			kernel.MustNewIdentity("B"), `{"delivery_id":"D1"}`, mintedAt)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, "N1", n.ID().String())
		assert.Equal(t, "D1", n.DeliveryID().String())
		assert.Equal(t, "B", n.Owner().String())
		assert.Equal(t, `{"delivery_id":"D1"}`, n.Metadata())
		assert.Equal(t, mintedAt, n.MintedAt())
	})

	t.Run("should report missing fields", func(t *testing.T) {
		n, err := nft.NewDeliveryNFT(kernel.ID{}, kernel.ID{}, kernel.Identity{}, "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, n)
		assert.Contains(t, err.Error(), "nft owner")
		assert.Contains(t, err.Error(), "nft metadata")
		assert.Contains(t, err.Error(), "nft minted at")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, (&nft.DeliveryNFT{}).Validate(), nft.ErrDeliveryNFTIsNotConstructed)
	})
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
