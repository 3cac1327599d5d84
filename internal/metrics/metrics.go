// Package metrics holds the Prometheus collectors of the service. Collectors
// are registered on the registerer passed to New, never on the global one.
package metrics

import (
	"errors"

	"proofparcel/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "proofparcel"

// Metrics is safe to use as a nil pointer, in which case every method is a no-op.
type Metrics struct {
	transitions         *prometheus.CounterVec
	escrowBalance       prometheus.Gauge
	nftsMinted          prometheus.Counter
	reconciliationDrift prometheus.Gauge
	requestDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Lifecycle operations by operation and result kind",
		}, []string{"operation", "result"}),
		escrowBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "escrow_balance",
			Help:      "Escrow ledger balance as last observed",
		}),
		nftsMinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nfts_minted_total",
			Help:      "Receipt artifacts minted",
		}),
		reconciliationDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "escrow_reconciliation_drift",
			Help:      "Escrow ledger minus the sum of amounts still held, as of the last reconciliation",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	var err error
	for _, c := range []prometheus.Collector{
		m.transitions, m.escrowBalance, m.nftsMinted, m.reconciliationDrift, m.requestDuration,
	} {
		err = errors.Join(err, reg.Register(c))
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveTransition counts one lifecycle operation. The result label is "ok"
// or the error kind.
func (m *Metrics) ObserveTransition(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(errs.KindOf(err))
	}
	m.transitions.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) SetEscrowBalance(balance uint64) {
	if m == nil {
		return
	}
	m.escrowBalance.Set(float64(balance))
}

func (m *Metrics) NFTMinted() {
	if m == nil {
		return
	}
	m.nftsMinted.Inc()
}

func (m *Metrics) SetReconciliationDrift(drift float64) {
	if m == nil {
		return
	}
	m.reconciliationDrift.Set(drift)
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
