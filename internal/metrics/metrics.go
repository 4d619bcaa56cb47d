// Package metrics registers the Prometheus collectors behind /metrics: a
// transaction counter by type, a fraud-outcome counter, a total-balance
// gauge, an integrity-failure counter, an integrity-last-run timestamp,
// and a request latency histogram.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds every collector the /metrics surface exposes. The command
// engine reports transactions and fraud verdicts into it and the integrity
// monitor its failures and last run; TotalBalance and RequestLatency are
// registered but nothing in this repo sets or observes them, so they export
// their zero values.
type Registry struct {
	TransactionsTotal   *prometheus.CounterVec
	FraudOutcomesTotal  *prometheus.CounterVec
	TotalBalance        prometheus.Gauge
	IntegrityFailures   prometheus.Counter
	IntegrityLastRun    prometheus.Gauge
	RequestLatency      *prometheus.HistogramVec
}

// NewRegistry builds and registers every collector against reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		TransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Committed ledger transactions, partitioned by operation_type.",
		}, []string{"operation_type"}),
		FraudOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_fraud_outcomes_total",
			Help: "Fraud engine verdicts observed by the transaction pipeline.",
		}, []string{"action"}),
		TotalBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_total_balance",
			Help: "Sum of every account's derived balance.",
		}),
		IntegrityFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_integrity_failures_total",
			Help: "verify_integrity runs that found a hash mismatch or posting imbalance.",
		}),
		IntegrityLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_integrity_last_run_timestamp_seconds",
			Help: "Unix timestamp of the most recently completed verify_integrity run.",
		}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		r.TransactionsTotal,
		r.FraudOutcomesTotal,
		r.TotalBalance,
		r.IntegrityFailures,
		r.IntegrityLastRun,
		r.RequestLatency,
	)

	return r
}
