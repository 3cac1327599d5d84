// Package ports defines the contracts between the application core and its
// adapters: repositories reached through a Unit of Work, the random source, the
// clock, checkpoint storage and the outbound notification transport.
package ports

import (
	"context"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
)

// DeliveryRepository stores Delivery aggregates. Every aggregate returned is a
// fresh copy; mutating it has no effect until it is passed to Update.
type DeliveryRepository interface {
	// Add stores a new delivery. Adding an id that already exists is an error.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update replaces an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get returns errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error)

	// GetAll, GetBySeller and GetByBuyer order results by creation time, then id.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)
	GetBySeller(ctx context.Context, seller kernel.Identity) ([]*delivery.Delivery, error)
	GetByBuyer(ctx context.Context, buyer kernel.Identity) ([]*delivery.Delivery, error)
}
