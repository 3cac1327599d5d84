package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"proofparcel/internal/adapters/out/memory"
	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/jobs"
	"proofparcel/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readFactory struct{ f *memory.UnitOfWorkFactory }

func (r readFactory) Create() queries.ReadUoW { return r.f.Create() }

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, factory *memory.UnitOfWorkFactory, amount, ledger uint64) {
	t.Helper()
	ctx := context.Background()
	d, err := delivery.NewDelivery(kernel.MustNewID("d1"), kernel.MustNewIdentity("s"),
		kernel.MustNewIdentity("b"), amount, "widget", testEpoch)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.DeliveryRepository().Add(ctx, d))
	require.NoError(t, uow.EscrowRepository().Save(ctx, escrow.NewLedger(ledger)))
	require.NoError(t, uow.Commit(ctx))
}

func TestEscrowReconciliationJob_Run(t *testing.T) {
	testCases := []struct {
		name      string
		ledger    uint64
		balanced  bool
		wantDrift float64
	}{
		{"balanced", 100, true, 0},
		{"ledger short", 90, false, -10},
		{"ledger over", 130, false, 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given a store whose ledger may disagree with its deliveries
			factory := memory.NewUnitOfWorkFactory(memory.NewStore())
			seed(t, factory, 100, tc.ledger)

			reg := prometheus.NewRegistry()
			m, err := metrics.New(reg)
			require.NoError(t, err)

			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))
			job := jobs.NewEscrowReconciliationJob(
				queries.NewReconcileEscrowQueryHandler(readFactory{factory}), m, "", logger)

			// When the job runs
			balanced := job.Run(t.Context())

			// Then the drift is exported and a mismatch is logged
			assert.Equal(t, tc.balanced, balanced)
			drift, err := testutil.GatherAndCount(reg, "proofparcel_escrow_reconciliation_drift")
			require.NoError(t, err)
			assert.Equal(t, 1, drift)
			if tc.balanced {
				assert.NotContains(t, logs.String(), `"level":"ERROR"`)
			} else {
				assert.Contains(t, logs.String(), "Escrow ledger does not match active deliveries")
				assert.Contains(t, logs.String(), `"component":"escrow_reconciliation_job"`)
			}
		})
	}
}

func TestEscrowReconciliationJob_StartRejectsBadSchedule(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	job := jobs.NewEscrowReconciliationJob(
		queries.NewReconcileEscrowQueryHandler(readFactory{factory}), nil, "not a schedule", slog.Default())

	require.Error(t, job.Start())
}

func TestJobManager_StartStop(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	manager := jobs.NewJobManager(queries.NewReconcileEscrowQueryHandler(readFactory{factory}), nil, "", slog.Default())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
