package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgercore/ledger-core/common"
	cn "github.com/ledgercore/ledger-core/common/constant"
	"github.com/ledgercore/ledger-core/common/dbtx"
	"github.com/ledgercore/ledger-core/common/mopentelemetry"
	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// idempotencyTTL bounds both the fast-path Redis marker and the record
// kept after completion.
const idempotencyTTL = 24 * time.Hour

// Request is the normalized input every pipeline operation reduces to.
// InitiatorAccountID is the account_id recorded on the Transaction: the
// account the caller named in the operation signature, which for Deposit
// is the credited account and for every other operation equals
// DebitAccountID. GatedAccountID is nil for Deposit (the credit side never
// runs a policy gate) and otherwise equals DebitAccountID.
type Request struct {
	InitiatorAccountID uuid.UUID
	DebitAccountID     uuid.UUID
	CreditAccountID    uuid.UUID
	GatedAccountID     *uuid.UUID
	Amount             money.Money
	OperationType      ledger.OperationType
	IdempotencyKey     string
	Description        string
	OTP                string
	FraudCtx           *ports.FraudContext
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	Transaction    ledger.Transaction
	IdempotencyHit bool
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return common.ValidationError{
			Code:    cn.ErrMissingFieldsInRequest.Error(),
			Title:   "Missing Idempotency Key",
			Message: "idempotency_key is required.",
		}
	}

	if !req.Amount.IsPositive() {
		return common.ValidationError{
			Code:    cn.ErrBadRequest.Error(),
			Title:   "Invalid Amount",
			Message: "amount must be greater than zero.",
		}
	}

	if req.DebitAccountID == req.CreditAccountID {
		return common.ValidateBusinessError(cn.ErrSameAccountTransfer, "Transaction")
	}

	return nil
}

// execute runs the unified pipeline inside exactly one database
// transaction: idempotency short-circuit, cache probe, fraud hook, account
// locks, status and policy gates, availability check, sequence + hash,
// append, balance update, commit. Conflict re-resolution and side effects
// happen after commit.
func (e *Engine) execute(ctx context.Context, req Request) (Result, error) {
	tracer := common.NewTracerFromContext(ctx)
	logger := common.NewLoggerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.execute."+strings.ToLower(string(req.OperationType)))
	defer span.End()

	if err := validateRequest(req); err != nil {
		return Result{}, err
	}

	cacheKey := idemCacheKey(req.InitiatorAccountID, req.IdempotencyKey)

	var result Result

	txErr := dbtx.RunInTransaction(ctx, e.DB, func(ctx context.Context) error {
		// Step 1: idempotency short-circuit.
		existing, err := e.Ledger.FindByIdempotency(ctx, req.InitiatorAccountID, req.IdempotencyKey)
		if err != nil {
			return err
		}

		if existing != nil {
			result = Result{Transaction: *existing, IdempotencyHit: true}
			return nil
		}

		// Step 2: cache probe. A cache outage is non-fatal: the DB
		// uniqueness constraint in step 9 is the authoritative guard.
		marked, cacheErr := e.Idempotency.MarkInFlight(ctx, idempotencyNamespace, cacheKey, idempotencyTTL)
		if cacheErr != nil {
			logger.Warn("idempotency cache unavailable, proceeding on DB uniqueness alone", zap.Error(cacheErr))
		} else if !marked {
			return cn.ErrTransactionConflict
		}

		// Step 3: fraud hook (optional).
		if req.FraudCtx != nil {
			if err := e.runFraudHook(ctx, req); err != nil {
				return err
			}
		}

		// Step 4: account acquisition — lock every involved account in
		// ascending id order.
		locked, err := e.Accounts.LockAccountsByID(ctx, []uuid.UUID{req.DebitAccountID, req.CreditAccountID})
		if err != nil {
			return err
		}

		// Step 5: status gate.
		for _, acc := range locked {
			if !acc.IsActive() {
				return cn.ErrAccountInactive
			}
		}

		// Step 6: policy gates (debit side only).
		if req.GatedAccountID != nil {
			if err := e.runPolicyGates(ctx, req, locked[*req.GatedAccountID]); err != nil {
				return err
			}
		}

		// Step 7: availability check. The treasury account is the
		// system's own sink/source and carries no funds cap.
		debitAcc := locked[req.DebitAccountID]
		if !debitAcc.IsTreasury() {
			derived, err := e.Accounts.DerivedBalance(ctx, req.DebitAccountID)
			if err != nil {
				return err
			}

			if debitAcc.Available(derived).LessThan(req.Amount) {
				return cn.ErrInsufficientFunds
			}
		}

		// Step 8: sequence & hash.
		sequence, err := e.Ledger.NextSequence(ctx)
		if err != nil {
			return err
		}

		prevHash, err := e.Ledger.PreviousRecordHash(ctx, sequence)
		if err != nil {
			return err
		}

		now := time.Now()
		txID := common.GenerateUUIDv7()
		recordHash := ledger.ComputeRecordHash(sequence, req.InitiatorAccountID, req.Amount, req.OperationType, req.Description, now, prevHash)

		tx := ledger.Transaction{
			ID:             txID,
			AccountID:      req.InitiatorAccountID,
			IdempotencyKey: req.IdempotencyKey,
			Amount:         req.Amount,
			OperationType:  req.OperationType,
			Timestamp:      now,
			Sequence:       sequence,
			PrevHash:       prevHash,
			RecordHash:     recordHash,
			Description:    req.Description,
		}

		pair := ledger.PostingPair{
			Debit: ledger.Posting{
				ID:            common.GenerateUUIDv7(),
				TransactionID: txID,
				AccountID:     req.DebitAccountID,
				Amount:        req.Amount.Neg(),
				Timestamp:     now,
			},
			Credit: ledger.Posting{
				ID:            common.GenerateUUIDv7(),
				TransactionID: txID,
				AccountID:     req.CreditAccountID,
				Amount:        req.Amount,
				Timestamp:     now,
			},
		}

		// A programmer bug, not a runtime condition: the two legs above
		// are built from the same Amount and its negation, so this can
		// only fail if this function is edited incorrectly.
		if !pair.Sum().IsZero() {
			panic("command: posting pair did not sum to zero")
		}

		// Step 9: append.
		if err := e.Ledger.Append(ctx, tx, []ledger.Posting{pair.Debit, pair.Credit}); err != nil {
			mopentelemetry.HandleSpanError(&span, "failed to append transaction", err)
			return err
		}

		// Step 10: balance cache update, under the locks already held.
		if err := e.Accounts.ApplyBalanceDelta(ctx, req.DebitAccountID, pair.Debit.Amount); err != nil {
			return err
		}

		if err := e.Accounts.ApplyBalanceDelta(ctx, req.CreditAccountID, pair.Credit.Amount); err != nil {
			return err
		}

		result = Result{Transaction: tx, IdempotencyHit: false}

		return nil
	})

	if txErr != nil {
		// Step 11: on a unique-constraint race, re-read by idempotency once
		// outside the aborted transaction; surface CONFLICT if still absent.
		if errors.Is(txErr, cn.ErrTransactionConflict) {
			if existing, findErr := e.Ledger.FindByIdempotency(ctx, req.InitiatorAccountID, req.IdempotencyKey); findErr == nil && existing != nil {
				return Result{Transaction: *existing, IdempotencyHit: true}, nil
			}
		}

		return Result{}, common.ValidateBusinessError(txErr, "Transaction")
	}

	// Step 12: post-commit side effects. Both are best-effort; a failure
	// here never unwinds the already-committed transaction.
	if !result.IdempotencyHit {
		if e.Metrics != nil {
			e.Metrics.TransactionsTotal.WithLabelValues(string(result.Transaction.OperationType)).Inc()
		}

		if err := e.Idempotency.Complete(ctx, idempotencyNamespace, cacheKey, result.Transaction.ID, idempotencyTTL); err != nil {
			logger.Warn("idempotency cache completion failed", zap.Error(err))
		}

		if req.Amount.GreaterThanOrEqual(e.Thresholds.AMLThreshold) {
			payload := map[string]any{
				"transaction_id": result.Transaction.ID.String(),
				"account_id":     req.InitiatorAccountID.String(),
				"amount":         req.Amount.String(),
				"operation_type": string(req.OperationType),
			}
			if err := e.Alerts.Notify(ctx, ports.AlertAMLLargeTransaction, payload); err != nil {
				logger.Warn("AML alert publish failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// runFraudHook implements step 3. The subject of the check is always
// InitiatorAccountID's owning user, resolved with an unlocked read since
// the account rows are not yet locked at this point in the pipeline.
func (e *Engine) runFraudHook(ctx context.Context, req Request) error {
	verdict, err := e.Fraud.Evaluate(ctx, req.InitiatorAccountID, req.Amount, *req.FraudCtx)
	if err != nil {
		common.NewLoggerFromContext(ctx).Warn("fraud engine unavailable, defaulting to ALLOW", zap.Error(err))
		return nil
	}

	if e.Metrics != nil {
		e.Metrics.FraudOutcomesTotal.WithLabelValues(string(verdict.Action)).Inc()
	}

	switch verdict.Action {
	case ports.FraudBlock:
		payload := map[string]any{
			"account_id": req.InitiatorAccountID.String(),
			"amount":     req.Amount.String(),
			"rules":      verdict.Rules,
		}
		if alertErr := e.Alerts.Notify(ctx, ports.AlertFraudBlocked, payload); alertErr != nil {
			common.NewLoggerFromContext(ctx).Warn("fraud-block alert publish failed", zap.Error(alertErr))
		}

		return cn.ErrFraudBlocked
	case ports.FraudVerify:
		if req.OTP == "" {
			return cn.ErrFraudVerificationRequired
		}

		subject, err := e.Accounts.FindAccountByID(ctx, req.InitiatorAccountID)
		if err != nil {
			return err
		}

		ok, err := e.OTP.ValidateSecondFactor(ctx, subject.UserID, req.OTP)
		if err != nil {
			return err
		}

		if !ok {
			return cn.ErrMFAInvalid
		}

		return nil
	default:
		return nil
	}
}

// runPolicyGates implements step 6: KYC threshold, per-operation limit, and
// step-up MFA, all evaluated against the locked gated account.
func (e *Engine) runPolicyGates(ctx context.Context, req Request, gated account.Account) error {
	if req.Amount.GreaterThanOrEqual(e.Thresholds.KYCThreshold) {
		kyc, err := e.Accounts.FindKycProfile(ctx, gated.UserID)
		if err != nil {
			return err
		}

		if !kyc.IsVerified() {
			return cn.ErrKYCRequired
		}
	}

	if err := e.checkOperationLimit(ctx, req, gated); err != nil {
		return err
	}

	if req.Amount.GreaterThanOrEqual(e.Thresholds.MFAThreshold) {
		user, err := e.Accounts.FindUserByID(ctx, gated.UserID)
		if err != nil {
			return err
		}

		if !user.MFAEnabled {
			return cn.ErrMFASetupRequired
		}

		if req.OTP == "" {
			return cn.ErrMFARequired
		}

		ok, err := e.OTP.ValidateSecondFactor(ctx, gated.UserID, req.OTP)
		if err != nil {
			return err
		}

		if !ok {
			return cn.ErrMFAInvalid
		}
	}

	return nil
}

// checkOperationLimit enforces the LimitConfig caps. Pix alone carries
// both a per-transaction cap and a daily cap; withdraw/transfer check only
// the matching daily cap.
func (e *Engine) checkOperationLimit(ctx context.Context, req Request, gated account.Account) error {
	switch req.OperationType {
	case ledger.OperationWithdraw:
		return e.checkDailyCap(ctx, req, gated, func(l account.LimitConfig) money.Money { return l.WithdrawalDailyCap })
	case ledger.OperationTransfer:
		return e.checkDailyCap(ctx, req, gated, func(l account.LimitConfig) money.Money { return l.TransferDailyCap })
	case ledger.OperationPix:
		limits, err := e.Accounts.FindLimitConfig(ctx, gated.UserID)
		if err != nil {
			return err
		}

		if req.Amount.Cmp(limits.PixPerTxCap) > 0 {
			return cn.ErrLimitExceeded
		}

		return e.checkDailyCap(ctx, req, gated, func(l account.LimitConfig) money.Money { return l.PixDailyCap })
	default:
		return nil
	}
}

func (e *Engine) checkDailyCap(ctx context.Context, req Request, gated account.Account, capOf func(account.LimitConfig) money.Money) error {
	limits, err := e.Accounts.FindLimitConfig(ctx, gated.UserID)
	if err != nil {
		return err
	}

	priorToday, err := e.Ledger.SumDebitsToday(ctx, req.DebitAccountID, req.OperationType)
	if err != nil {
		return err
	}

	if priorToday.Add(req.Amount).Cmp(capOf(limits)) > 0 {
		return cn.ErrLimitExceeded
	}

	return nil
}

func idemCacheKey(accountID uuid.UUID, key string) string {
	return accountID.String() + ":" + key
}
