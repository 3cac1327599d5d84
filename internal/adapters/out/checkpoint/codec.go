package checkpoint

import (
	"bytes"
	"encoding/json"
	"fmt"

	"proofparcel/internal/core/ports"
	"proofparcel/internal/pkg/errs"
)

const (
	Schema         = "proofparcel.checkpoint"
	CurrentVersion = 1
)

type envelope struct {
	Schema  string          `json:"schema"`
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// migration rewrites a state payload of version N into version N+1.
type migration func(state json.RawMessage) (json.RawMessage, error)

// migrations is keyed by the version a migration upgrades from.
var migrations = map[int]migration{
	0: migrateV0ToV1,
}

// JSONCodec implements ports.CheckpointCodec.
type JSONCodec struct{}

var _ ports.CheckpointCodec = JSONCodec{}

func NewJSONCodec() JSONCodec {
	return JSONCodec{}
}

// Encode always writes CurrentVersion.
func (JSONCodec) Encode(snapshot ports.Snapshot) ([]byte, error) {
	state, err := json.Marshal(fromSnapshot(snapshot))
	if err != nil {
		return nil, fmt.Errorf("encode checkpoint state: %w", err)
	}

	blob, err := json.Marshal(envelope{
		Schema:  Schema,
		Version: CurrentVersion,
		State:   state,
	})
	if err != nil {
		return nil, fmt.Errorf("encode checkpoint envelope: %w", err)
	}
	return blob, nil
}

// Decode reads any supported version and rehydrates every record.
func (JSONCodec) Decode(blob []byte) (ports.Snapshot, error) {
	version, state, err := open(blob)
	if err != nil {
		return ports.Snapshot{}, err
	}

	for v := version; v < CurrentVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return ports.Snapshot{}, errs.NewVersionIsInvalidErrorWithCause("checkpoint",
				fmt.Errorf("no migration from version %d", v))
		}
		if state, err = migrate(state); err != nil {
			return ports.Snapshot{}, fmt.Errorf("migrate checkpoint from version %d: %w", v, err)
		}
	}

	var current stateV1
	if err = strictUnmarshal(state, &current); err != nil {
		return ports.Snapshot{}, errs.NewValueIsInvalidErrorWithCause("checkpoint state", err)
	}

	return toSnapshot(current)
}

// open splits a blob into its version and state payload.
func open(blob []byte) (int, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 {
		return 0, nil, errs.NewVersionIsInvalidErrorWithCause("checkpoint", fmt.Errorf("blob is empty"))
	}

	if trimmed[0] == '[' {
		return 0, trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return 0, nil, errs.NewVersionIsInvalidErrorWithCause("checkpoint", err)
	}
	if env.Schema != Schema {
		return 0, nil, errs.NewVersionIsInvalidErrorWithCause("checkpoint",
			fmt.Errorf("unknown schema %q", env.Schema))
	}
	if env.Version < 1 || env.Version > CurrentVersion {
		return 0, nil, errs.NewVersionIsInvalidErrorWithCause("checkpoint",
			fmt.Errorf("version %d is not between 1 and %d", env.Version, CurrentVersion))
	}
	if len(env.State) == 0 {
		return 0, nil, errs.NewValueIsRequiredError("checkpoint state")
	}
	return env.Version, env.State, nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
