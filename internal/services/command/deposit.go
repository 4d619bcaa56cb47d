package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// DepositInput is Deposit's input.
type DepositInput struct {
	AccountID      uuid.UUID
	Amount         money.Money
	IdempotencyKey string
	Description    string
	FraudCtx       *ports.FraudContext
}

// Deposit credits accountID and debits the treasury account. The credit
// side never runs a policy gate (GatedAccountID is nil): receiving money
// carries no KYC/limit/MFA exposure.
func (e *Engine) Deposit(ctx context.Context, in DepositInput) (Result, error) {
	treasury, err := e.Accounts.FindOrCreateTreasury(ctx)
	if err != nil {
		return Result{}, err
	}

	return e.execute(ctx, Request{
		InitiatorAccountID: in.AccountID,
		DebitAccountID:     treasury.ID,
		CreditAccountID:    in.AccountID,
		GatedAccountID:     nil,
		Amount:             in.Amount,
		OperationType:      ledger.OperationDeposit,
		IdempotencyKey:     in.IdempotencyKey,
		Description:        in.Description,
		FraudCtx:           in.FraudCtx,
	})
}
