// Package delivery implements the Delivery aggregate: a two-party escrow
// transfer that moves through a fixed lifecycle and is released only after the
// buyer proves receipt with a one-time code.
//
// The package includes:
//   - Delivery: the aggregate root holding parties, amount, status, code and history
//   - Status: the lifecycle state machine
//   - Otp: the one-time code value object with its expiry
//   - HistoryEntry: one (status, time) element of the append-only audit log
//
// Key business rules:
//   - Lifecycle: Pending -> InTransit -> Delivered -> Confirmed -> EscrowReleased
//   - Only the seller starts, issues the code and releases escrow; only the buyer confirms
//   - A code is valid until and including its expiry second
//   - The status history is never reordered or truncated and always ends with the
//     current status; per-status timestamps are read from it
//   - Cancelled is a valid status value that no transition produces
package delivery
