package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
)

// DeliveryRepository implements ports.DeliveryRepository on a Store.
type DeliveryRepository struct {
	uow *UnitOfWork
}

func (r *DeliveryRepository) Add(_ context.Context, aggregate *delivery.Delivery) error {
	if err := errors.Join(r.uow.check(), aggregate.Validate()); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.deliveries[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("delivery id", errors.New("delivery "+key+" already exists"))
	}

	r.put(key, deliveryFromDomain(aggregate))
	return nil
}

func (r *DeliveryRepository) Update(_ context.Context, aggregate *delivery.Delivery) error {
	if err := errors.Join(r.uow.check(), aggregate.Validate()); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.store.deliveries[key]; !exists {
		return errs.NewObjectNotFoundError("delivery", key)
	}

	r.put(key, deliveryFromDomain(aggregate))
	return nil
}

func (r *DeliveryRepository) Get(_ context.Context, id kernel.ID) (*delivery.Delivery, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}

	dto, ok := r.uow.store.deliveries[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id.String())
	}
	return deliveryToDomain(dto)
}

func (r *DeliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	return r.list(func(deliveryDTO) bool { return true })
}

func (r *DeliveryRepository) GetBySeller(_ context.Context, seller kernel.Identity) ([]*delivery.Delivery, error) {
	return r.list(func(dto deliveryDTO) bool { return dto.Seller == seller.String() })
}

func (r *DeliveryRepository) GetByBuyer(_ context.Context, buyer kernel.Identity) ([]*delivery.Delivery, error) {
	return r.list(func(dto deliveryDTO) bool { return dto.Buyer == buyer.String() })
}

func (r *DeliveryRepository) put(key string, dto deliveryDTO) {
	deliveries := r.uow.store.deliveries
	prev, existed := deliveries[key]
	deliveries[key] = dto

	r.uow.journal(func() {
		if existed {
			deliveries[key] = prev
		} else {
			delete(deliveries, key)
		}
	})
}

func (r *DeliveryRepository) list(match func(deliveryDTO) bool) ([]*delivery.Delivery, error) {
	if err := r.uow.check(); err != nil {
		return nil, err
	}

	dtos := make([]deliveryDTO, 0)
	for _, dto := range r.uow.store.deliveries {
		if match(dto) {
			dtos = append(dtos, dto)
		}
	}
	sortDeliveries(dtos)

	result := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := deliveryToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func sortDeliveries(dtos []deliveryDTO) {
	slices.SortFunc(dtos, func(a, b deliveryDTO) int {
		return cmp.Or(a.createdAt().Compare(b.createdAt()), cmp.Compare(a.ID, b.ID))
	})
}
