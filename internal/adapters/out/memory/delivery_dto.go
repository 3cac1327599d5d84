package memory

import (
	"errors"
	"time"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
)

type otpDTO struct {
	Code      string
	ExpiresAt time.Time
}

type deliveryDTO struct {
	ID          string
	Seller      string
	Buyer       string
	Amount      uint64
	Description string
	Otp         *otpDTO
	History     []delivery.HistoryEntry
}

func deliveryFromDomain(d *delivery.Delivery) deliveryDTO {
	dto := deliveryDTO{
		ID:          d.ID().String(),
		Seller:      d.Seller().String(),
		Buyer:       d.Buyer().String(),
		Amount:      d.Amount(),
		Description: d.Description(),
		History:     d.History(),
	}
	if otp, ok := d.Otp(); ok {
		dto.Otp = &otpDTO{Code: otp.Code(), ExpiresAt: otp.ExpiresAt()}
	}
	return dto
}

func deliveryToDomain(dto deliveryDTO) (*delivery.Delivery, error) {
	id, errID := kernel.NewID(dto.ID)
	seller, errSeller := kernel.NewIdentity(dto.Seller)
	buyer, errBuyer := kernel.NewIdentity(dto.Buyer)
	if err := errors.Join(errID, errSeller, errBuyer); err != nil {
		return nil, err
	}

	var otp *delivery.Otp
	if dto.Otp != nil {
		restored, err := delivery.RestoreOtp(dto.Otp.Code, dto.Otp.ExpiresAt)
		if err != nil {
			return nil, err
		}
		otp = &restored
	}

	return delivery.RestoreDelivery(id, seller, buyer, dto.Amount, dto.Description, otp, dto.History)
}

func (dto deliveryDTO) createdAt() time.Time {
	return dto.History[0].At
}
