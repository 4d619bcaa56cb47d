package local_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/ledger-core/internal/adapters/local"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

func TestAllowAllFraudEngine_AlwaysAllows(t *testing.T) {
	engine := local.NewAllowAllFraudEngine()

	verdict, err := engine.Evaluate(context.Background(), uuid.New(), money.MustFromString("500.00"), ports.FraudContext{IP: "10.0.0.1"})

	require.NoError(t, err)
	assert.Equal(t, ports.FraudAllow, verdict.Action)
	assert.Empty(t, verdict.Rules)
}
