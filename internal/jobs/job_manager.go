package jobs

import (
	"fmt"
	"log/slog"

	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reconciliationJob *EscrowReconciliationJob
}

func NewJobManager(
	reconcileHandler queries.ReconcileEscrowQueryHandler,
	m *metrics.Metrics,
	reconcileSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewEscrowReconciliationJob(reconcileHandler, m, reconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start escrow reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
