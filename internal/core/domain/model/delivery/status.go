package delivery

import (
	"fmt"

	"proofparcel/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered ──> Confirmed ──> EscrowReleased
//
//	Cancelled (reserved, never entered)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the amount is held in escrow.
	Pending

	// InTransit means the seller has dispatched the goods.
	InTransit

	// Delivered means a one-time code has been issued to prove receipt.
	Delivered

	// Confirmed means the buyer proved receipt; the receipt artifact is minted.
	Confirmed

	// EscrowReleased is final; the amount has left escrow.
	EscrowReleased

	// Cancelled is part of the model but no operation enters it.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "Pending",
	InTransit:      "InTransit",
	Delivered:      "Delivered",
	Confirmed:      "Confirmed",
	EscrowReleased: "EscrowReleased",
	Cancelled:      "Cancelled",
}

// successors lists the only legal edge out of each status.
var successors = map[Status]Status{
	Pending:   InTransit,
	InTransit: Delivered,
	Delivered: Confirmed,
	Confirmed: EscrowReleased,
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// HoldsEscrow reports whether a delivery in this status still counts towards
// the escrow ledger.
func (s Status) HoldsEscrow() bool {
	return s == Pending || s == InTransit || s == Delivered || s == Confirmed
}

// CanTransitionTo reports whether next is the legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	succ, ok := successors[s]
	return ok && succ == next
}

// Start transitions Pending to InTransit.
func (s Status) Start() (Status, error) {
	return s.transition(InTransit, "start delivery")
}

// Deliver transitions InTransit to Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Delivered, "generate otp")
}

// Confirm transitions Delivered to Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(Confirmed, "confirm delivery")
}

// ReleaseEscrow transitions Confirmed to EscrowReleased.
func (s Status) ReleaseEscrow() (Status, error) {
	return s.transition(EscrowReleased, "release escrow")
}

func (s Status) transition(next Status, action string) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidStateError(action, s.String(), predecessorOf(next).String())
	}
	return next, nil
}

func predecessorOf(next Status) Status {
	for from, to := range successors {
		if to == next {
			return from
		}
	}
	return Unknown
}
