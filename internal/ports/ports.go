// Package ports declares the interfaces the transaction engine depends on:
// the two persistence stores, the three Redis-backed caches, and the four
// external collaborators (fraud, token vault, OTP, alerting). Concrete
// adapters live under internal/adapters/*; the engine never imports an
// adapter package directly, only these interfaces.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// AccountStore holds the authoritative account/user/KYC/limit records plus
// the pessimistic row locks the engine needs for multi-account operations.
//
//go:generate mockgen --destination=mocks/account_store_mock.go --package=mocks . AccountStore
type AccountStore interface {
	// LockAccountsByID acquires SELECT ... FOR UPDATE locks on all given
	// account ids, in ascending id order, inside the caller's transaction
	// (ctx must carry a *sql.Tx via common/dbtx). Returns NotFound if any
	// id doesn't exist.
	LockAccountsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]account.Account, error)
	FindAccountByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	FindAccountByNumber(ctx context.Context, accountNumber string) (account.Account, error)
	// FindOrCreateTreasury returns the reserved treasury account,
	// auto-provisioning it on first use.
	FindOrCreateTreasury(ctx context.Context) (account.Account, error)
	// ApplyBalanceDelta adjusts the cached balance column under the
	// already-held lock; it never re-derives or re-locks.
	ApplyBalanceDelta(ctx context.Context, accountID uuid.UUID, delta money.Money) error
	// DerivedBalance computes Σ postings.amount for accountID. This is the
	// source of truth get_balance and the availability check fall back to.
	DerivedBalance(ctx context.Context, accountID uuid.UUID) (money.Money, error)

	FindKycProfile(ctx context.Context, userID uuid.UUID) (account.KycProfile, error)
	FindLimitConfig(ctx context.Context, userID uuid.UUID) (account.LimitConfig, error)
	FindPixKey(ctx context.Context, key string) (account.PixKey, error)
	CreatePixKey(ctx context.Context, key account.PixKey) error

	FindUserByID(ctx context.Context, id uuid.UUID) (account.User, error)
}

// StatementFilter narrows statement listings.
type StatementFilter struct {
	From       *time.Time
	To         *time.Time
	OpType     *ledger.OperationType
	MinAmount  *money.Money
	MaxAmount  *money.Money
	Search     string
	Limit      int
	Cursor     string
}

// LedgerStore is the append-only transactions + postings store.
//
//go:generate mockgen --destination=mocks/ledger_store_mock.go --package=mocks . LedgerStore
type LedgerStore interface {
	// NextSequence atomically increments and returns the global counter,
	// executed against the executor in ctx (never its own transaction).
	NextSequence(ctx context.Context) (int64, error)
	// PreviousRecordHash returns the record_hash of the transaction at
	// sequence-1, or "" if sequence == 1.
	PreviousRecordHash(ctx context.Context, sequence int64) (string, error)
	// Append inserts the transaction row and its postings atomically. It
	// never updates or deletes existing rows.
	Append(ctx context.Context, tx ledger.Transaction, postings []ledger.Posting) error
	FindByIdempotency(ctx context.Context, accountID uuid.UUID, idempotencyKey string) (*ledger.Transaction, error)
	ListStatement(ctx context.Context, accountID uuid.UUID, filter StatementFilter) ([]ledger.Transaction, error)
	// SumDebitsToday returns the absolute sum of debit postings recorded for
	// accountID under opType since the start of the current UTC day, used by
	// the engine's daily LimitConfig gates.
	SumDebitsToday(ctx context.Context, accountID uuid.UUID, opType ledger.OperationType) (money.Money, error)
	// VerifyIntegrity recomputes every record_hash in ascending sequence
	// order and checks posting balance per transaction.
	VerifyIntegrity(ctx context.Context) (ledger.IntegrityResult, error)
}

// IdempotencyCache is the fast-path cache layered in front of the database
// uniqueness constraint. Best-effort: an outage falls back to the
// authoritative LedgerStore lookup.
//
//go:generate mockgen --destination=mocks/idempotency_cache_mock.go --package=mocks . IdempotencyCache
type IdempotencyCache interface {
	// MarkInFlight records that (namespace, key) is being processed. Returns
	// false if another in-flight marker already exists for the same key.
	MarkInFlight(ctx context.Context, namespace, key string, ttl time.Duration) (bool, error)
	// Complete replaces the in-flight marker with the final transaction id.
	Complete(ctx context.Context, namespace, key string, transactionID uuid.UUID, ttl time.Duration) error
	// Lookup returns the cached transaction id for (namespace, key), or
	// (uuid.Nil, false, false) on cache miss. found=true,inFlight=true means a
	// marker exists but no outcome yet: the caller surfaces a retriable
	// conflict.
	Lookup(ctx context.Context, namespace, key string) (transactionID uuid.UUID, inFlight bool, found bool, err error)
}

// RateLimiter is the sliding-window request limiter.
type RateLimiter interface {
	// Allow records a request for identity at now and reports whether it
	// falls within the limit for the trailing window.
	Allow(ctx context.Context, identity string, window time.Duration, limit int) (allowed bool, err error)
}

// RevocationList is the JTI blocklist for invalidated sessions.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// FraudAction is the verdict returned by FraudEnginePort.Evaluate.
type FraudAction string

const (
	FraudAllow  FraudAction = "ALLOW"
	FraudVerify FraudAction = "VERIFY"
	FraudBlock  FraudAction = "BLOCK"
)

// FraudContext carries the request attributes the fraud hook scores.
type FraudContext struct {
	IP        string
	UserAgent string
	DeviceFP  string
}

// FraudVerdict is FraudEnginePort.Evaluate's result.
type FraudVerdict struct {
	Action FraudAction
	Rules  []string
}

// FraudEnginePort is the external fraud-scoring collaborator.
// Implementations must be idempotent and side-effect-safe: the engine may
// call Evaluate more than once for the same logical operation.
//
//go:generate mockgen --destination=mocks/fraud_engine_mock.go --package=mocks . FraudEnginePort
type FraudEnginePort interface {
	Evaluate(ctx context.Context, accountID uuid.UUID, amount money.Money, fctx FraudContext) (FraudVerdict, error)
}

// TokenVaultPort tokenizes/detokenizes sensitive values (CPF, etc.) with a
// deterministic token for a given input.
type TokenVaultPort interface {
	Tokenize(ctx context.Context, value, valueType string) (string, error)
	Detokenize(ctx context.Context, token string) (string, error)
}

// OTPValidatorPort validates a step-up second factor, consuming any matched
// backup code atomically so it cannot be replayed.
//
//go:generate mockgen --destination=mocks/otp_validator_mock.go --package=mocks . OTPValidatorPort
type OTPValidatorPort interface {
	ValidateSecondFactor(ctx context.Context, userID uuid.UUID, code string) (bool, error)
}

// AlertKind enumerates the fire-and-forget alerts the engine emits.
type AlertKind string

const (
	AlertAMLLargeTransaction AlertKind = "AML_LARGE_TRANSACTION"
	AlertFraudBlocked        AlertKind = "FRAUD_BLOCKED"
	AlertIntegrityFailure    AlertKind = "INTEGRITY_FAILURE"
)

// AlertRouterPort publishes fire-and-forget notifications (AML, fraud score
// writes, integrity alerts).
//
//go:generate mockgen --destination=mocks/alert_router_mock.go --package=mocks . AlertRouterPort
type AlertRouterPort interface {
	Notify(ctx context.Context, kind AlertKind, payload map[string]any) error
}
