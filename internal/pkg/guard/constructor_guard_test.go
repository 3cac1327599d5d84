package guard_test

import (
	"errors"
	"testing"

	"proofparcel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Receipt must be created via NewReceipt")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		cp := g

		// Then
		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type receipt struct {
		code  string
		guard guard.ConstructorGuard
	}
	newReceipt := func(code string) (receipt, error) {
		if code == "" {
			return receipt{}, errors.New("code is required")
		}
		return receipt{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("built_by_constructor", func(t *testing.T) {
		r, err := newReceipt("123456")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(nil))
		assert.Equal(t, "123456", r.code)
	})

	t.Run("rejected_by_constructor_yields_zero_value", func(t *testing.T) {
		r, err := newReceipt("")

		require.Error(t, err)
		require.ErrorIs(t, r.guard.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}
