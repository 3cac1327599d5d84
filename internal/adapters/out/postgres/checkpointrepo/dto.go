// Package checkpointrepo stores checkpoint blobs in the checkpoints table.
package checkpointrepo

import "time"

// CheckpointDTO is one saved checkpoint. The highest id is the latest.
type CheckpointDTO struct {
	ID      uint64    `gorm:"primaryKey;autoIncrement"`
	Payload []byte    `gorm:"type:bytea;not null"`
	SavedAt time.Time `gorm:"not null"`
}

func (CheckpointDTO) TableName() string {
	return "checkpoints"
}
