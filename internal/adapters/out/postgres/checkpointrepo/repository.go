package checkpointrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proofparcel/internal/core/ports"

	"gorm.io/gorm"
)

// GormCheckpointStore implements ports.CheckpointStore. Every Save inserts a
// row and prunes all but the newest retain rows in the same transaction.
type GormCheckpointStore struct {
	db     *gorm.DB
	retain int
}

var _ ports.CheckpointStore = (*GormCheckpointStore)(nil)

// NewGormCheckpointStore keeps at least one checkpoint regardless of retain.
func NewGormCheckpointStore(db *gorm.DB, retain int) *GormCheckpointStore {
	return &GormCheckpointStore{
		db:     db,
		retain: max(retain, 1),
	}
}

func (s *GormCheckpointStore) Save(ctx context.Context, blob []byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dto := CheckpointDTO{
			Payload: blob,
			SavedAt: time.Now().UTC(),
		}
		if err := tx.Create(&dto).Error; err != nil {
			return fmt.Errorf("insert checkpoint: %w", err)
		}

		keep := tx.Model(&CheckpointDTO{}).Select("id").Order("id DESC").Limit(s.retain)
		if err := tx.Where("id NOT IN (?)", keep).Delete(&CheckpointDTO{}).Error; err != nil {
			return fmt.Errorf("prune checkpoints: %w", err)
		}
		return nil
	})
}

func (s *GormCheckpointStore) Load(ctx context.Context) ([]byte, error) {
	var dto CheckpointDTO
	err := s.db.WithContext(ctx).Order("id DESC").First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrNoCheckpoint
	}
	if err != nil {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}
	return dto.Payload, nil
}
