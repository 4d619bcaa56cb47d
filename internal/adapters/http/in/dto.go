// Package in holds the HTTP surface: request/response DTOs, one handler
// type per operation group, and the router that wires them together with
// the common/net/http fiber middleware stack. Handler structs wrap the
// command/query layer, methods bind through commonHTTP.WithBody, and
// errors surface through commonHTTP.WithError.
package in

import (
	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// FraudContextInput carries the optional request-attribution fields the
// fraud hook scores.
type FraudContextInput struct {
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	DeviceFP  string `json:"device_fp,omitempty"`
}

// DepositRequest is create_deposit's wire payload.
type DepositRequest struct {
	AccountID      string             `json:"account_id" validate:"required,uuid"`
	Amount         money.Money        `json:"amount" validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"required"`
	Description    string             `json:"description,omitempty"`
	FraudCtx       *FraudContextInput `json:"fraud_ctx,omitempty"`
}

// WithdrawRequest is create_withdraw's wire payload.
type WithdrawRequest struct {
	AccountID      string             `json:"account_id" validate:"required,uuid"`
	Amount         money.Money        `json:"amount" validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"required"`
	Description    string             `json:"description,omitempty"`
	OTP            string             `json:"otp_code,omitempty"`
	FraudCtx       *FraudContextInput `json:"fraud_ctx,omitempty"`
}

// InternalTransferRequest is internal_transfer's wire payload.
type InternalTransferRequest struct {
	FromAccountID  string             `json:"from_account_id" validate:"required,uuid"`
	ToAccountID    string             `json:"to_account_id" validate:"required,uuid"`
	Amount         money.Money        `json:"amount" validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"required"`
	Description    string             `json:"description,omitempty"`
	OTP            string             `json:"otp_code,omitempty"`
	FraudCtx       *FraudContextInput `json:"fraud_ctx,omitempty"`
}

// PixTransferRequest is pix_transfer's wire payload.
type PixTransferRequest struct {
	FromAccountID  string             `json:"from_account_id" validate:"required,uuid"`
	PixKey         string             `json:"pix_key" validate:"required"`
	Amount         money.Money        `json:"amount" validate:"required"`
	IdempotencyKey string             `json:"idempotency_key" validate:"required"`
	Description    string             `json:"description,omitempty"`
	OTP            string             `json:"otp_code,omitempty"`
	FraudCtx       *FraudContextInput `json:"fraud_ctx,omitempty"`
}

// TransactionResponse is the wire shape returned by every mutating operation.
type TransactionResponse struct {
	ID             uuid.UUID   `json:"id"`
	AccountID      uuid.UUID   `json:"account_id"`
	Amount         money.Money `json:"amount"`
	OperationType  string      `json:"operation_type"`
	Sequence       int64       `json:"sequence"`
	RecordHash     string      `json:"record_hash"`
	PrevHash       string      `json:"prev_hash"`
	Description    string      `json:"description,omitempty"`
	IdempotencyHit bool        `json:"idempotency_hit"`
	Timestamp      string      `json:"timestamp"`
}

// BalanceResponse answers get_balance.
type BalanceResponse struct {
	AccountID uuid.UUID   `json:"account_id"`
	Balance   money.Money `json:"balance"`
}

func toFraudContext(in *FraudContextInput) *ports.FraudContext {
	if in == nil {
		return nil
	}

	return &ports.FraudContext{IP: in.IP, UserAgent: in.UserAgent, DeviceFP: in.DeviceFP}
}

func parseAccountID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
