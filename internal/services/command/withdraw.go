package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// WithdrawInput is Withdraw's input.
type WithdrawInput struct {
	AccountID      uuid.UUID
	Amount         money.Money
	IdempotencyKey string
	Description    string
	OTP            string
	FraudCtx       *ports.FraudContext
}

// Withdraw debits accountID and credits the treasury account. The debit
// side is the account itself, so it is the gated side.
func (e *Engine) Withdraw(ctx context.Context, in WithdrawInput) (Result, error) {
	treasury, err := e.Accounts.FindOrCreateTreasury(ctx)
	if err != nil {
		return Result{}, err
	}

	gated := in.AccountID

	return e.execute(ctx, Request{
		InitiatorAccountID: in.AccountID,
		DebitAccountID:     in.AccountID,
		CreditAccountID:    treasury.ID,
		GatedAccountID:     &gated,
		Amount:             in.Amount,
		OperationType:      ledger.OperationWithdraw,
		IdempotencyKey:     in.IdempotencyKey,
		Description:        in.Description,
		OTP:                in.OTP,
		FraudCtx:           in.FraudCtx,
	})
}
