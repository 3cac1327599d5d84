// Package system adapts operating-system facilities to core ports.
package system

import (
	"context"
	"crypto/rand"
	"fmt"

	"proofparcel/internal/core/ports"
)

// CryptoRandom reads from the operating system CSPRNG.
type CryptoRandom struct{}

var _ ports.RandomSource = CryptoRandom{}

func (CryptoRandom) Read(ctx context.Context, n int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("crypto/rand: %w", err)
	}
	return b, nil
}
