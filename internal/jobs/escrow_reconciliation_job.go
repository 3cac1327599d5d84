package jobs

import (
	"context"
	"log/slog"

	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation at the start of every minute.
const DefaultReconcileSchedule = "0 * * * * *"

// EscrowReconciliationJob periodically compares the escrow ledger with the
// amounts held by active deliveries. A mismatch means the store is corrupt; it
// is logged and exported, never repaired.
type EscrowReconciliationJob struct {
	handler  queries.ReconcileEscrowQueryHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewEscrowReconciliationJob(
	handler queries.ReconcileEscrowQueryHandler,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *EscrowReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &EscrowReconciliationJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "escrow_reconciliation_job"),
	}
}

func (j *EscrowReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escrow reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one reconciliation and reports whether the ledger balanced.
func (j *EscrowReconciliationJob) Run(ctx context.Context) bool {
	report, err := j.handler.Handle(ctx, queries.NewReconcileEscrowQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Escrow reconciliation failed", "error", err)
		return false
	}

	j.metrics.SetEscrowBalance(report.Ledger)
	j.metrics.SetReconciliationDrift(report.Drift())

	if !report.Balanced {
		j.logger.ErrorContext(ctx, "Escrow ledger does not match active deliveries",
			"ledger", report.Ledger, "expected", report.Expected)
	}
	return report.Balanced
}

// Stop waits for a running reconciliation to finish.
func (j *EscrowReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Escrow reconciliation job stopped")
}
