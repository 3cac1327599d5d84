package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/ports"
)

const (
	codeRandomBytes = 4
	idRandomBytes   = 32

	codeSpan   = 900000
	codeOffset = 100000
)

// OtpService turns random bytes into one-time codes and identifiers. Each call is
// an independent draw; the service keeps no state between calls.
//
// Example:
//
//	otps := services.NewOtpService(random)
//	code, err := otps.GenerateCode(ctx) // "100000".."999999"
type OtpService struct {
	random ports.RandomSource
}

func NewOtpService(random ports.RandomSource) OtpService {
	return OtpService{random: random}
}

// GenerateCode reads 4 bytes as a big-endian integer and maps it onto the
// six-digit range.
func (s OtpService) GenerateCode(ctx context.Context) (string, error) {
	b, err := s.read(ctx, codeRandomBytes)
	if err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(b)
	return strconv.FormatUint(uint64(n%codeSpan+codeOffset), 10), nil
}

// GenerateID returns the hex encoding of 32 random bytes.
func (s OtpService) GenerateID(ctx context.Context) (kernel.ID, error) {
	b, err := s.read(ctx, idRandomBytes)
	if err != nil {
		return kernel.ID{}, err
	}
	return kernel.IDFromBytes(b)
}

func (s OtpService) read(ctx context.Context, n int) ([]byte, error) {
	b, err := s.random.Read(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	if len(b) < n {
		return nil, fmt.Errorf("read random bytes: got %d, want %d", len(b), n)
	}
	return b[:n], nil
}
