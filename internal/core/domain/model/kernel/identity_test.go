package kernel_test

import (
	"testing"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("accepts opaque text", func(t *testing.T) {
		id, err := kernel.NewIdentity("rrkah-fqaaa-aaaaa-aaaaq-cai")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "rrkah-fqaaa-aaaaa-aaaaq-cai", id.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := kernel.NewIdentity("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects surrounding whitespace", func(t *testing.T) {
		_, err := kernel.NewIdentity(" seller ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.Identity

		assert.Equal(t, kernel.ErrIdentityIsNotConstructed, id.Validate())
	})

	t.Run("equality compares text", func(t *testing.T) {
		a := kernel.MustNewIdentity("alice")
		b := kernel.MustNewIdentity("alice")
		c := kernel.MustNewIdentity("bob")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("must panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustNewIdentity("") })
	})
}

func TestID(t *testing.T) {
	t.Run("from bytes is lowercase hex", func(t *testing.T) {
		id, err := kernel.IDFromBytes([]byte{0x00, 0xab, 0xff})

		require.NoError(t, err)
		assert.Equal(t, "00abff", id.String())
	})

	t.Run("from empty bytes fails", func(t *testing.T) {
		_, err := kernel.IDFromBytes(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("opaque text round trips", func(t *testing.T) {
		id, err := kernel.NewID("D1")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(kernel.MustNewID("D1")))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.ID

		assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
	})
}
