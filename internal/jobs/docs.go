// Package jobs provides scheduled background tasks for the ProofParcel service.
//
// Jobs use github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// EscrowReconciliationJob recomputes the escrow balance from the deliveries that
// still hold escrow and compares it with the ledger. Its schedule comes from
// RECONCILE_SCHEDULE and defaults to once a minute.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, metrics, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A mismatch or a failed read is logged at error level and exported as the
// proofparcel_escrow_reconciliation_drift gauge. Jobs never modify state.
package jobs
