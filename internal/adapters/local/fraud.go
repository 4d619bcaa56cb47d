package local

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// AllowAllFraudEngine is the reference FraudEnginePort: it always allows.
// Production deployments wire a real scoring model behind this port; the
// engine pipeline is oblivious to which is running.
type AllowAllFraudEngine struct{}

// NewAllowAllFraudEngine returns the always-ALLOW fraud stub.
func NewAllowAllFraudEngine() *AllowAllFraudEngine {
	return &AllowAllFraudEngine{}
}

// Evaluate always returns FraudAllow. It is intentionally side-effect-free
// and idempotent, satisfying the FraudEnginePort contract trivially.
func (AllowAllFraudEngine) Evaluate(_ context.Context, _ uuid.UUID, _ money.Money, _ ports.FraudContext) (ports.FraudVerdict, error) {
	return ports.FraudVerdict{Action: ports.FraudAllow}, nil
}
