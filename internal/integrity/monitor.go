// Package integrity runs the periodic full-chain scan, registered as an
// app on the common.Launcher.
package integrity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/mlog"
	"github.com/ledgercore/ledger-core/internal/metrics"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// DefaultInterval is how often Monitor scans the chain when no
// INTEGRITY_CHECK_INTERVAL_SECONDS override is configured.
const DefaultInterval = 300 * time.Second

// Monitor implements common.App: its Run method blocks, ticking
// verify_integrity on Interval for the life of the process.
type Monitor struct {
	Ledger   ports.LedgerStore
	Alerts   ports.AlertRouterPort
	Interval time.Duration

	Health  prometheus.Gauge
	Metrics *metrics.Registry

	healthy atomic.Bool
}

// NewMonitor returns a Monitor. interval <= 0 falls back to DefaultInterval.
func NewMonitor(ledgerStore ports.LedgerStore, alerts ports.AlertRouterPort, interval time.Duration, health prometheus.Gauge, reg *metrics.Registry) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}

	m := &Monitor{Ledger: ledgerStore, Alerts: alerts, Interval: interval, Health: health, Metrics: reg}
	m.healthy.Store(true)

	return m
}

// Healthy reports the outcome of the most recently completed run, used by
// the /health endpoint's integrity_ok field. It starts true so a process
// that hasn't ticked yet doesn't report degraded.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

// Run ticks the chain scan until the process exits. It never mutates data
// and degrades the health gauge on either a failed scan or an error
// running it.
func (m *Monitor) Run(launcher *common.Launcher) error {
	ctx := context.Background()
	logger := launcher.Logger

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	m.runOnce(ctx, logger)

	for range ticker.C {
		m.runOnce(ctx, logger)
	}

	return nil
}

func (m *Monitor) runOnce(ctx context.Context, logger mlog.Logger) {
	defer m.recordLastRun()

	result, err := m.Ledger.VerifyIntegrity(ctx)
	if err != nil {
		logger.Errorf("integrity monitor: verify_integrity failed: %v", err)
		m.setHealth(0)
		m.recordFailure()
		m.alert(ctx, "integrity monitor run failed", err.Error())

		return
	}

	if !result.OK {
		logger.Errorf("integrity monitor: chain broken at sequence %d (%s)", result.FailedSequence, result.Reason)
		m.setHealth(0)
		m.recordFailure()
		m.alert(ctx, string(result.Reason), result.FailedTxID.String())

		return
	}

	logger.Infof("integrity monitor: verified %d transactions, chain intact", result.Count)
	m.setHealth(1)
}

func (m *Monitor) recordLastRun() {
	if m.Metrics != nil {
		m.Metrics.IntegrityLastRun.Set(float64(time.Now().Unix()))
	}
}

func (m *Monitor) recordFailure() {
	if m.Metrics != nil {
		m.Metrics.IntegrityFailures.Inc()
	}
}

func (m *Monitor) setHealth(v float64) {
	m.healthy.Store(v == 1)

	if m.Health != nil {
		m.Health.Set(v)
	}
}

func (m *Monitor) alert(ctx context.Context, reason, detail string) {
	if m.Alerts == nil {
		return
	}

	_ = m.Alerts.Notify(ctx, ports.AlertIntegrityFailure, map[string]any{
		"reason": reason,
		"detail": detail,
	})
}
