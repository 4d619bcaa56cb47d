package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// PixInput is PixTransfer's input.
type PixInput struct {
	FromAccountID  uuid.UUID
	PixKey         string
	Amount         money.Money
	IdempotencyKey string
	Description    string
	OTP            string
	FraudCtx       *ports.FraudContext
}

// PixTransfer resolves PixKey to its owning account and reduces to an
// internal transfer using the same pipeline, with the additional per-tx
// and per-day Pix caps enforced inside checkOperationLimit.
func (e *Engine) PixTransfer(ctx context.Context, in PixInput) (Result, error) {
	target, err := e.Accounts.FindPixKey(ctx, in.PixKey)
	if err != nil {
		return Result{}, common.ValidateBusinessError(err, "PixKey")
	}

	gated := in.FromAccountID

	return e.execute(ctx, Request{
		InitiatorAccountID: in.FromAccountID,
		DebitAccountID:     in.FromAccountID,
		CreditAccountID:    target.AccountID,
		GatedAccountID:     &gated,
		Amount:             in.Amount,
		OperationType:      ledger.OperationPix,
		IdempotencyKey:     in.IdempotencyKey,
		Description:        in.Description,
		OTP:                in.OTP,
		FraudCtx:           in.FraudCtx,
	})
}
