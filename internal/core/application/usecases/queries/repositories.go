// Package queries contains the read operations of the service. Queries see
// committed state only: each one reads inside its own unit of work and rolls
// it back.
package queries

import (
	"context"

	"proofparcel/internal/core/ports"
)

type (
	// ReadUoW is the read side of a unit of work.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error

		DeliveryRepository() ports.DeliveryRepository
		NftRepository() ports.NftRepository
		NotificationRepository() ports.NotificationRepository
		EscrowRepository() ports.EscrowRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// read runs fn inside a fresh unit of work and discards it afterwards.
func read[T any](ctx context.Context, factory ReadUoWFactory, fn func(uow ReadUoW) (T, error)) (T, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		var zero T
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}
