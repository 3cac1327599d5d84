// Package escrow tracks the total amount held on behalf of buyers.
//
// The Ledger balance always equals the sum of amounts over deliveries that still
// hold escrow (Pending, InTransit, Delivered and Confirmed). Deposit and Release
// refuse to wrap around; either failure means the stored state is corrupt.
package escrow
