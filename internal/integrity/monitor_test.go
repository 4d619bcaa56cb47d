package integrity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ledgercore/ledger-core/common/mlog"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/metrics"
	"github.com/ledgercore/ledger-core/internal/ports"
	"github.com/ledgercore/ledger-core/internal/ports/mocks"
)

func newTestMonitor(t *testing.T, store ports.LedgerStore, alerts ports.AlertRouterPort) *Monitor {
	t.Helper()

	reg := prometheus.NewRegistry()
	health := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_integrity_healthy"})
	reg.MustRegister(health)

	return NewMonitor(store, alerts, 0, health, metrics.NewRegistry(reg))
}

func TestMonitor_RunOnce_HealthyChainStaysHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLedgerStore(ctrl)
	alerts := mocks.NewMockAlertRouterPort(ctrl)

	store.EXPECT().VerifyIntegrity(gomock.Any()).Return(ledger.IntegrityResult{OK: true, Count: 3}, nil)

	m := newTestMonitor(t, store, alerts)
	m.runOnce(context.Background(), &mlog.NoneLogger{})

	assert.True(t, m.Healthy())
}

func TestMonitor_RunOnce_BrokenChainDegradesHealthAndAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLedgerStore(ctrl)
	alerts := mocks.NewMockAlertRouterPort(ctrl)

	failedTx := uuid.New()
	store.EXPECT().VerifyIntegrity(gomock.Any()).Return(ledger.IntegrityResult{
		OK:             false,
		Count:          2,
		FailedTxID:     failedTx,
		FailedSequence: 2,
		Reason:         ledger.ReasonHashMismatch,
	}, nil)
	alerts.EXPECT().Notify(gomock.Any(), ports.AlertIntegrityFailure, gomock.Any()).Return(nil)

	m := newTestMonitor(t, store, alerts)
	m.runOnce(context.Background(), &mlog.NoneLogger{})

	assert.False(t, m.Healthy())
}

func TestMonitor_RunOnce_ScanErrorDegradesHealthAndAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLedgerStore(ctrl)
	alerts := mocks.NewMockAlertRouterPort(ctrl)

	store.EXPECT().VerifyIntegrity(gomock.Any()).Return(ledger.IntegrityResult{}, errors.New("db unavailable"))
	alerts.EXPECT().Notify(gomock.Any(), ports.AlertIntegrityFailure, gomock.Any()).Return(nil)

	m := newTestMonitor(t, store, alerts)
	m.runOnce(context.Background(), &mlog.NoneLogger{})

	assert.False(t, m.Healthy())
}

func TestMonitor_Healthy_StartsTrueBeforeFirstRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLedgerStore(ctrl)
	alerts := mocks.NewMockAlertRouterPort(ctrl)

	m := newTestMonitor(t, store, alerts)

	assert.True(t, m.Healthy())
}

func TestNewMonitor_DefaultsIntervalWhenNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLedgerStore(ctrl)
	alerts := mocks.NewMockAlertRouterPort(ctrl)

	m := newTestMonitor(t, store, alerts)

	assert.Equal(t, DefaultInterval, m.Interval)
}
