package in

import (
	"github.com/gofiber/fiber/v2"

	commonHTTP "github.com/ledgercore/ledger-core/common/net/http"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/services/command"
)

// TransactionHandler serves the four mutating operations: deposit,
// withdraw, internal transfer, Pix transfer.
type TransactionHandler struct {
	Command *command.Engine
}

// CreateDeposit handles POST /v1/deposits.
func (h *TransactionHandler) CreateDeposit(i any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	payload := i.(*DepositRequest)

	accountID, err := parseAccountID(payload.AccountID)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "account_id must be a valid UUID.",
		})
	}

	result, err := h.Command.Deposit(ctx, command.DepositInput{
		AccountID:      accountID,
		Amount:         payload.Amount,
		IdempotencyKey: payload.IdempotencyKey,
		Description:    payload.Description,
		FraudCtx:       toFraudContext(payload.FraudCtx),
	})
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	return commonHTTP.Created(c, toTransactionResponse(result))
}

// CreateWithdraw handles POST /v1/withdrawals.
func (h *TransactionHandler) CreateWithdraw(i any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	payload := i.(*WithdrawRequest)

	accountID, err := parseAccountID(payload.AccountID)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "account_id must be a valid UUID.",
		})
	}

	result, err := h.Command.Withdraw(ctx, command.WithdrawInput{
		AccountID:      accountID,
		Amount:         payload.Amount,
		IdempotencyKey: payload.IdempotencyKey,
		Description:    payload.Description,
		OTP:            payload.OTP,
		FraudCtx:       toFraudContext(payload.FraudCtx),
	})
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	return commonHTTP.Created(c, toTransactionResponse(result))
}

// CreateInternalTransfer handles POST /v1/transfers.
func (h *TransactionHandler) CreateInternalTransfer(i any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	payload := i.(*InternalTransferRequest)

	fromID, err := parseAccountID(payload.FromAccountID)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "from_account_id must be a valid UUID.",
		})
	}

	toID, err := parseAccountID(payload.ToAccountID)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "to_account_id must be a valid UUID.",
		})
	}

	result, err := h.Command.InternalTransfer(ctx, command.TransferInput{
		FromAccountID:  fromID,
		ToAccountID:    toID,
		Amount:         payload.Amount,
		IdempotencyKey: payload.IdempotencyKey,
		Description:    payload.Description,
		OTP:            payload.OTP,
		FraudCtx:       toFraudContext(payload.FraudCtx),
	})
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	return commonHTTP.Created(c, toTransactionResponse(result))
}

// CreatePixTransfer handles POST /v1/pix-transfers.
func (h *TransactionHandler) CreatePixTransfer(i any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	payload := i.(*PixTransferRequest)

	fromID, err := parseAccountID(payload.FromAccountID)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "from_account_id must be a valid UUID.",
		})
	}

	result, err := h.Command.PixTransfer(ctx, command.PixInput{
		FromAccountID:  fromID,
		PixKey:         payload.PixKey,
		Amount:         payload.Amount,
		IdempotencyKey: payload.IdempotencyKey,
		Description:    payload.Description,
		OTP:            payload.OTP,
		FraudCtx:       toFraudContext(payload.FraudCtx),
	})
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	return commonHTTP.Created(c, toTransactionResponse(result))
}

func toTransactionResponse(result command.Result) TransactionResponse {
	body := toTransactionBody(result.Transaction)
	body.IdempotencyHit = result.IdempotencyHit

	return body
}

func toTransactionBody(tx ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		AccountID:     tx.AccountID,
		Amount:        tx.Amount,
		OperationType: string(tx.OperationType),
		Sequence:      tx.Sequence,
		RecordHash:    tx.RecordHash,
		PrevHash:      tx.PrevHash,
		Description:   tx.Description,
		Timestamp:     ledger.FormatTimestamp(tx.Timestamp),
	}
}
