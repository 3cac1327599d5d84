package ports

import (
	"context"
	"time"
)

// RandomSource yields unpredictable bytes. A read may block.
type RandomSource interface {
	Read(ctx context.Context, n int) ([]byte, error)
}

// Clock reports the current time in whole seconds, UTC.
type Clock interface {
	Now() time.Time
}
