package queries

import (
	"time"

	"proofparcel/internal/core/domain/model/delivery"
)

// DeliveryResponse is the read model of a delivery. The issued code itself is
// never part of it; only its expiry is shown.
type DeliveryResponse struct {
	ID               string                 `json:"id"`
	Seller           string                 `json:"seller"`
	Buyer            string                 `json:"buyer"`
	Amount           uint64                 `json:"amount"`
	Description      string                 `json:"description"`
	Status           string                 `json:"status"`
	CreatedAt        time.Time              `json:"created_at"`
	InTransitAt      *time.Time             `json:"in_transit_at,omitempty"`
	DeliveredAt      *time.Time             `json:"delivered_at,omitempty"`
	ConfirmedAt      *time.Time             `json:"confirmed_at,omitempty"`
	EscrowReleasedAt *time.Time             `json:"escrow_released_at,omitempty"`
	CancelledAt      *time.Time             `json:"cancelled_at,omitempty"`
	OtpExpiresAt     *time.Time             `json:"otp_expires_at,omitempty"`
	StatusHistory    []HistoryEntryResponse `json:"status_history"`
}

type HistoryEntryResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

func newDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	history := d.History()
	entries := make([]HistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		entries = append(entries, HistoryEntryResponse{Status: entry.Status.String(), At: entry.At})
	}

	response := DeliveryResponse{
		ID:               d.ID().String(),
		Seller:           d.Seller().String(),
		Buyer:            d.Buyer().String(),
		Amount:           d.Amount(),
		Description:      d.Description(),
		Status:           d.Status().String(),
		CreatedAt:        d.CreatedAt(),
		InTransitAt:      enteredAt(d, delivery.InTransit),
		DeliveredAt:      enteredAt(d, delivery.Delivered),
		ConfirmedAt:      enteredAt(d, delivery.Confirmed),
		EscrowReleasedAt: enteredAt(d, delivery.EscrowReleased),
		CancelledAt:      enteredAt(d, delivery.Cancelled),
		StatusHistory:    entries,
	}

	if otp, ok := d.Otp(); ok {
		expiresAt := otp.ExpiresAt()
		response.OtpExpiresAt = &expiresAt
	}

	return response
}

func newDeliveryResponses(deliveries []*delivery.Delivery) []DeliveryResponse {
	responses := make([]DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		responses = append(responses, newDeliveryResponse(d))
	}
	return responses
}

func enteredAt(d *delivery.Delivery, status delivery.Status) *time.Time {
	at, ok := d.EnteredAt(status)
	if !ok {
		return nil
	}
	return &at
}
