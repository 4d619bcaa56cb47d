package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// TransferInput is InternalTransfer's input.
type TransferInput struct {
	FromAccountID  uuid.UUID
	ToAccountID    uuid.UUID
	Amount         money.Money
	IdempotencyKey string
	Description    string
	OTP            string
	FraudCtx       *ports.FraudContext
}

// InternalTransfer moves funds between two accounts owned by this ledger.
// The sending account is both the initiator and the gated side.
func (e *Engine) InternalTransfer(ctx context.Context, in TransferInput) (Result, error) {
	gated := in.FromAccountID

	return e.execute(ctx, Request{
		InitiatorAccountID: in.FromAccountID,
		DebitAccountID:     in.FromAccountID,
		CreditAccountID:    in.ToAccountID,
		GatedAccountID:     &gated,
		Amount:             in.Amount,
		OperationType:      ledger.OperationTransfer,
		IdempotencyKey:     in.IdempotencyKey,
		Description:        in.Description,
		OTP:                in.OTP,
		FraudCtx:           in.FraudCtx,
	})
}
