package checkpoint

import (
	"errors"
	"fmt"
	"time"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/core/ports"
	"proofparcel/internal/pkg/errs"
)

func fromSnapshot(snapshot ports.Snapshot) stateV1 {
	state := stateV1{
		Deliveries:    make([]deliveryV1, 0, len(snapshot.Deliveries)),
		NFTs:          make([]nftV1, 0, len(snapshot.NFTs)),
		EscrowBalance: snapshot.Escrow.Balance(),
	}
	for _, d := range snapshot.Deliveries {
		state.Deliveries = append(state.Deliveries, deliveryFromDomain(d))
	}
	for _, n := range snapshot.NFTs {
		state.NFTs = append(state.NFTs, nftV1{
			ID:         n.ID().String(),
			DeliveryID: n.DeliveryID().String(),
			Owner:      n.Owner().String(),
			Metadata:   n.Metadata(),
			MintedAt:   n.MintedAt().Unix(),
		})
	}
	return state
}

func deliveryFromDomain(d *delivery.Delivery) deliveryV1 {
	record := deliveryV1{
		ID:               d.ID().String(),
		Seller:           d.Seller().String(),
		Buyer:            d.Buyer().String(),
		Amount:           d.Amount(),
		Description:      d.Description(),
		Status:           d.Status().String(),
		CreatedAt:        d.CreatedAt().Unix(),
		InTransitAt:      enteredAt(d, delivery.InTransit),
		DeliveredAt:      enteredAt(d, delivery.Delivered),
		ConfirmedAt:      enteredAt(d, delivery.Confirmed),
		EscrowReleasedAt: enteredAt(d, delivery.EscrowReleased),
		CancelledAt:      enteredAt(d, delivery.Cancelled),
	}

	if otp, ok := d.Otp(); ok {
		code := otp.Code()
		expiresAt := otp.ExpiresAt().Unix()
		record.Otp = &code
		record.OtpExpiresAt = &expiresAt
	}

	for _, entry := range d.History() {
		record.StatusHistory = append(record.StatusHistory, historyV1{
			Status: entry.Status.String(),
			At:     entry.At.Unix(),
		})
	}
	return record
}

func enteredAt(d *delivery.Delivery, status delivery.Status) *int64 {
	at, ok := d.EnteredAt(status)
	if !ok {
		return nil
	}
	unix := at.Unix()
	return &unix
}

func toSnapshot(state stateV1) (ports.Snapshot, error) {
	snapshot := ports.Snapshot{
		Deliveries: make([]*delivery.Delivery, 0, len(state.Deliveries)),
		NFTs:       make([]*nft.DeliveryNFT, 0, len(state.NFTs)),
		Escrow:     escrow.NewLedger(state.EscrowBalance),
	}

	for i, record := range state.Deliveries {
		d, err := deliveryToDomain(record)
		if err != nil {
			return ports.Snapshot{}, fmt.Errorf("delivery %d (%s): %w", i, record.ID, err)
		}
		snapshot.Deliveries = append(snapshot.Deliveries, d)
	}

	for i, record := range state.NFTs {
		n, err := nftToDomain(record)
		if err != nil {
			return ports.Snapshot{}, fmt.Errorf("nft %d (%s): %w", i, record.ID, err)
		}
		snapshot.NFTs = append(snapshot.NFTs, n)
	}

	return snapshot, nil
}

func deliveryToDomain(record deliveryV1) (*delivery.Delivery, error) {
	id, errID := kernel.NewID(record.ID)
	seller, errSeller := kernel.NewIdentity(record.Seller)
	buyer, errBuyer := kernel.NewIdentity(record.Buyer)
	if err := errors.Join(errID, errSeller, errBuyer); err != nil {
		return nil, err
	}

	history := make([]delivery.HistoryEntry, 0, len(record.StatusHistory))
	for _, entry := range record.StatusHistory {
		status, err := delivery.ParseStatus(entry.Status)
		if err != nil {
			return nil, err
		}
		history = append(history, delivery.HistoryEntry{Status: status, At: unix(entry.At)})
	}

	otp, err := otpToDomain(record.Otp, record.OtpExpiresAt)
	if err != nil {
		return nil, err
	}

	d, err := delivery.RestoreDelivery(id, seller, buyer, record.Amount, record.Description, otp, history)
	if err != nil {
		return nil, err
	}

	if err = checkDerivedFields(record, d); err != nil {
		return nil, err
	}
	return d, nil
}

func otpToDomain(code *string, expiresAt *int64) (*delivery.Otp, error) {
	switch {
	case code == nil && expiresAt == nil:
		return nil, nil
	case code == nil || expiresAt == nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("otp", errors.New("code and expiry must be set together"))
	}

	otp, err := delivery.RestoreOtp(*code, unix(*expiresAt))
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// checkDerivedFields rejects records whose status and per-status timestamps
// disagree with the history they were derived from.
func checkDerivedFields(record deliveryV1, d *delivery.Delivery) error {
	if record.Status != d.Status().String() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("status %s does not match history ending in %s", record.Status, d.Status()))
	}
	if record.CreatedAt != d.CreatedAt().Unix() {
		return errs.NewValueIsInvalidErrorWithCause("created_at", errors.New("does not match history"))
	}

	fields := []struct {
		name   string
		value  *int64
		status delivery.Status
	}{
		{"in_transit_at", record.InTransitAt, delivery.InTransit},
		{"delivered_at", record.DeliveredAt, delivery.Delivered},
		{"confirmed_at", record.ConfirmedAt, delivery.Confirmed},
		{"escrow_released_at", record.EscrowReleasedAt, delivery.EscrowReleased},
		{"cancelled_at", record.CancelledAt, delivery.Cancelled},
	}
	for _, field := range fields {
		want := enteredAt(d, field.status)
		if (want == nil) != (field.value == nil) || (want != nil && *want != *field.value) {
			return errs.NewValueIsInvalidErrorWithCause(field.name, errors.New("does not match history"))
		}
	}
	return nil
}

func nftToDomain(record nftV1) (*nft.DeliveryNFT, error) {
	id, errID := kernel.NewID(record.ID)
	deliveryID, errDeliveryID := kernel.NewID(record.DeliveryID)
	owner, errOwner := kernel.NewIdentity(record.Owner)
	if err := errors.Join(errID, errDeliveryID, errOwner); err != nil {
		return nil, err
	}
	return nft.NewDeliveryNFT(id, deliveryID, owner, record.Metadata, unix(record.MintedAt))
}

func unix(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
