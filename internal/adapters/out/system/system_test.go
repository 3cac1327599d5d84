package system_test

import (
	"context"
	"testing"
	"time"

	"proofparcel/internal/adapters/out/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandom_Read(t *testing.T) {
	a, err := system.CryptoRandom{}.Read(t.Context(), 32)
	require.NoError(t, err)
	b, err := system.CryptoRandom{}.Read(t.Context(), 32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestCryptoRandom_ReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := system.CryptoRandom{}.Read(ctx, 4)

	require.ErrorIs(t, err, context.Canceled)
}

func TestUTCClock_Now(t *testing.T) {
	now := system.UTCClock{}.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
}
