package ports

import (
	"context"
	"errors"
)

// ErrNoCheckpoint is returned by CheckpointStore.Load when nothing has been saved yet.
var ErrNoCheckpoint = errors.New("no checkpoint saved")

// CheckpointStore keeps the most recently saved checkpoint blob.
type CheckpointStore interface {
	// Save durably stores blob. A later Load returns exactly these bytes.
	Save(ctx context.Context, blob []byte) error

	// Load returns the latest blob, or ErrNoCheckpoint.
	Load(ctx context.Context) ([]byte, error)
}

// CheckpointCodec turns a Snapshot into a versioned blob and back. Decode
// rehydrates every record through the domain constructors.
type CheckpointCodec interface {
	Encode(snapshot Snapshot) ([]byte, error)
	Decode(blob []byte) (Snapshot, error)
}
