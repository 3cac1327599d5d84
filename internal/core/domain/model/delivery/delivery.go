package delivery

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/pkg/errs"
	"proofparcel/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root of the escrow workflow. It owns the parties,
// the escrowed amount, the current status, the issued one-time code and the
// status history.
//
// Delivery follows these invariants:
//   - id, seller, buyer, amount and description never change after creation
//   - amount is positive and description is non-empty
//   - status changes only along the Status transition graph
//   - history is non-empty, non-decreasing in time, and ends with the current status
//   - a code exists exactly when the delivery has reached Delivered
//
// Timestamps of individual statuses are derived from the history, so a status
// timestamp is set once when the status is entered and never overwritten.
type Delivery struct {
	id          kernel.ID
	seller      kernel.Identity
	buyer       kernel.Identity
	amount      uint64
	description string
	status      Status
	otp         *Otp
	history     []HistoryEntry

	guard guard.ConstructorGuard
}

// NewDelivery creates a Pending delivery. The caller creating it becomes the seller.
//
// Example:
//
//	d, err := delivery.NewDelivery(id, seller, buyer, 1000, "widget", clock.Now())
//	if err != nil {
//	    // errs.ErrValueIsInvalid or errs.ErrValueIsRequired
//	}
func NewDelivery(
	id kernel.ID,
	seller kernel.Identity,
	buyer kernel.Identity,
	amount uint64,
	description string,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:  Pending,
		history: []HistoryEntry{{Status: Pending, At: createdAt}},
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSeller(seller),
		d.setBuyer(buyer),
		d.setAmount(amount),
		d.setDescription(description),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persisted state. The current status is
// the last history entry; the whole history is checked against the transition graph.
func RestoreDelivery(
	id kernel.ID,
	seller kernel.Identity,
	buyer kernel.Identity,
	amount uint64,
	description string,
	otp *Otp,
	history []HistoryEntry,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSeller(seller),
		d.setBuyer(buyer),
		d.setAmount(amount),
		d.setDescription(description),
		d.setHistory(history),
	); err != nil {
		return nil, err
	}

	if err := d.setOtp(otp); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.ID {
	return d.id
}

func (d *Delivery) Seller() kernel.Identity {
	return d.seller
}

func (d *Delivery) Buyer() kernel.Identity {
	return d.buyer
}

func (d *Delivery) Amount() uint64 {
	return d.amount
}

func (d *Delivery) Description() string {
	return d.description
}

func (d *Delivery) Status() Status {
	return d.status
}

// HoldsEscrow reports whether the amount still counts towards the escrow ledger.
func (d *Delivery) HoldsEscrow() bool {
	return d.status.HoldsEscrow()
}

// Otp returns the issued code, if any.
func (d *Delivery) Otp() (Otp, bool) {
	if d.otp == nil {
		return Otp{}, false
	}
	return *d.otp, true
}

// History returns a copy of the status history, oldest first.
func (d *Delivery) History() []HistoryEntry {
	return slices.Clone(d.history)
}

// EnteredAt returns when the delivery first entered status.
func (d *Delivery) EnteredAt(status Status) (time.Time, bool) {
	for _, entry := range d.history {
		if entry.Status == status {
			return entry.At, true
		}
	}
	return time.Time{}, false
}

func (d *Delivery) CreatedAt() time.Time {
	return d.history[0].At
}

func (d *Delivery) ConfirmedAt() (time.Time, bool) {
	return d.EnteredAt(Confirmed)
}

// UpdatedAt is the time of the most recent transition.
func (d *Delivery) UpdatedAt() time.Time {
	return d.history[len(d.history)-1].At
}

// Start marks the delivery as in transit. Only the seller may start it, and only
// from Pending.
func (d *Delivery) Start(caller kernel.Identity, now time.Time) error {
	if !caller.IsEqual(d.seller) {
		return errs.NewUnauthorizedError("start delivery", "seller")
	}

	next, err := d.status.Start()
	if err != nil {
		return err
	}

	d.transition(next, now)
	return nil
}

// Deliver issues code and marks the delivery as delivered. Only the seller may
// issue a code, and only while the delivery is in transit.
func (d *Delivery) Deliver(caller kernel.Identity, code string, now time.Time) error {
	if err := d.CanDeliver(caller); err != nil {
		return err
	}

	otp, err := NewOtp(code, now)
	if err != nil {
		return err
	}

	d.otp = &otp
	d.transition(Delivered, now)
	return nil
}

// CanDeliver runs the checks of Deliver without changing the delivery, so a
// caller can fail fast before drawing a code.
func (d *Delivery) CanDeliver(caller kernel.Identity) error {
	if !caller.IsEqual(d.seller) {
		return errs.NewUnauthorizedError("generate otp", "seller")
	}
	_, err := d.status.Deliver()
	return err
}

// Confirm proves receipt with code. Only the buyer may confirm, and only while
// the delivery is delivered and the code has not expired.
func (d *Delivery) Confirm(caller kernel.Identity, code string, now time.Time) error {
	if !caller.IsEqual(d.buyer) {
		return errs.NewUnauthorizedError("confirm delivery", "buyer")
	}

	next, err := d.status.Confirm()
	if err != nil {
		return err
	}

	if d.otp == nil {
		return errs.NewInvalidStateError("confirm delivery", "Delivered without a code", Delivered.String())
	}

	if err = d.otp.Verify(code, now); err != nil {
		return err
	}

	d.transition(next, now)
	return nil
}

// ReleaseEscrow finalizes the delivery. Only the seller may release, and only
// after the buyer confirmed.
func (d *Delivery) ReleaseEscrow(caller kernel.Identity, now time.Time) error {
	if !caller.IsEqual(d.seller) {
		return errs.NewUnauthorizedError("release escrow", "seller")
	}

	next, err := d.status.ReleaseEscrow()
	if err != nil {
		return err
	}

	d.transition(next, now)
	return nil
}

// transition appends to the history. A wall clock stepping backwards is clamped
// to the previous entry so the history stays non-decreasing.
func (d *Delivery) transition(next Status, now time.Time) {
	if last := d.UpdatedAt(); now.Before(last) {
		now = last
	}
	d.status = next
	d.history = append(d.history, HistoryEntry{Status: next, At: now})
}

func (d *Delivery) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setSeller(seller kernel.Identity) error {
	if err := seller.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller", err)
	}
	d.seller = seller
	return nil
}

func (d *Delivery) setBuyer(buyer kernel.Identity) error {
	if err := buyer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer", err)
	}
	d.buyer = buyer
	return nil
}

func (d *Delivery) setAmount(amount uint64) error {
	if amount == 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", errors.New("amount must be greater than 0"))
	}
	d.amount = amount
	return nil
}

func (d *Delivery) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsInvalidErrorWithCause("description", errors.New("description cannot be empty"))
	}
	d.description = description
	return nil
}

// setHistory accepts only edges of the transition graph. No edge enters
// Cancelled, so a history containing it is rejected until a cancellation rule
// exists.
func (d *Delivery) setHistory(history []HistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}
	if history[0].Status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status history",
			fmt.Errorf("first entry is %s, want %s", history[0].Status, Pending))
	}

	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1], history[i]
		if !prev.Status.CanTransitionTo(cur.Status) {
			return errs.NewValueIsInvalidErrorWithCause("status history",
				fmt.Errorf("entry %d: %s cannot follow %s", i, cur.Status, prev.Status))
		}
		if cur.At.Before(prev.At) {
			return errs.NewValueIsInvalidErrorWithCause("status history",
				fmt.Errorf("entry %d: time goes backwards", i))
		}
	}

	d.history = slices.Clone(history)
	d.status = history[len(history)-1].Status
	return nil
}

func (d *Delivery) setOtp(otp *Otp) error {
	_, delivered := d.EnteredAt(Delivered)
	switch {
	case otp == nil && delivered:
		return errs.NewValueIsRequiredErrorWithCause("otp",
			fmt.Errorf("delivery in status %s must carry a code", d.status))
	case otp != nil && !delivered:
		return errs.NewValueIsInvalidErrorWithCause("otp",
			fmt.Errorf("delivery in status %s cannot carry a code", d.status))
	case otp != nil:
		if err := otp.Validate(); err != nil {
			return err
		}
		cp := *otp
		d.otp = &cp
	}
	return nil
}
