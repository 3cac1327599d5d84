package escrow

import (
	"math"

	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/pkg/errs"
)

// Ledger is the escrow balance. The zero value is an empty ledger.
type Ledger struct {
	balance uint64
}

func NewLedger(balance uint64) Ledger {
	return Ledger{balance: balance}
}

func (l Ledger) Balance() uint64 {
	return l.balance
}

// Deposit returns the ledger after holding amount.
func (l Ledger) Deposit(amount uint64) (Ledger, error) {
	if amount > math.MaxUint64-l.balance {
		return l, errs.NewValueIsOutOfRangeError("escrow balance after deposit", amount, 0, math.MaxUint64-l.balance)
	}
	return Ledger{balance: l.balance + amount}, nil
}

// Release returns the ledger after paying out amount.
func (l Ledger) Release(amount uint64) (Ledger, error) {
	if amount > l.balance {
		return l, errs.NewValueIsOutOfRangeError("escrow balance after release", amount, 0, l.balance)
	}
	return Ledger{balance: l.balance - amount}, nil
}

// Expected computes the balance implied by deliveries.
func Expected(deliveries []*delivery.Delivery) (Ledger, error) {
	var (
		l   Ledger
		err error
	)
	for _, d := range deliveries {
		if !d.HoldsEscrow() {
			continue
		}
		if l, err = l.Deposit(d.Amount()); err != nil {
			return Ledger{}, err
		}
	}
	return l, nil
}
