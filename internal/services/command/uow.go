package command

import (
	"database/sql"

	"github.com/ledgercore/ledger-core/internal/metrics"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// Engine wires the transaction engine's collaborators: the primary *sql.DB
// it runs its unit of work against (via common/dbtx), the two persistence
// ports, the idempotency cache, and the external collaborator ports.
// Deposit/Withdraw/InternalTransfer/PixTransfer are thin adapters over
// Engine.execute; none of them, nor Engine itself, imports an adapter
// package directly.
type Engine struct {
	DB *sql.DB

	Accounts    ports.AccountStore
	Ledger      ports.LedgerStore
	Idempotency ports.IdempotencyCache
	Fraud       ports.FraudEnginePort
	OTP         ports.OTPValidatorPort
	Alerts      ports.AlertRouterPort

	Thresholds Thresholds
	Metrics    *metrics.Registry
}

// New returns an Engine ready to execute operations.
func New(db *sql.DB, accounts ports.AccountStore, ledger ports.LedgerStore, idempotency ports.IdempotencyCache, fraud ports.FraudEnginePort, otp ports.OTPValidatorPort, alerts ports.AlertRouterPort, thresholds Thresholds) *Engine {
	return &Engine{
		DB:          db,
		Accounts:    accounts,
		Ledger:      ledger,
		Idempotency: idempotency,
		Fraud:       fraud,
		OTP:         otp,
		Alerts:      alerts,
		Thresholds:  thresholds,
	}
}

// WithMetrics attaches a metrics registry the pipeline reports committed
// transactions and fraud verdicts to; the engine works the same without one.
func (e *Engine) WithMetrics(reg *metrics.Registry) *Engine {
	e.Metrics = reg
	return e
}

const idempotencyNamespace = "tx"
