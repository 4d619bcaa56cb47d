// Package ledger holds the append-only ledger's core entities: Transaction,
// Posting, the operation-type enum, and the hash-chain digest (hash.go).
// Nothing in this package talks to a database or a clock directly — callers
// supply timestamps so the hash chain stays byte-reproducible between the
// write path and verify_integrity.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// OperationType enumerates the four transaction kinds the engine produces.
type OperationType string

const (
	OperationDeposit  OperationType = "DEPOSIT"
	OperationWithdraw OperationType = "WITHDRAW"
	OperationTransfer OperationType = "TRANSFER"
	OperationPix      OperationType = "PIX"
)

// TreasuryAccountNumber is the reserved system account that is the
// counterparty for every DEPOSIT/WITHDRAW posting pair.
const TreasuryAccountNumber = "0000-0"

// Transaction is one append-only ledger record, never updated or deleted
// once committed.
type Transaction struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	IdempotencyKey string
	Amount         money.Money
	OperationType  OperationType
	Timestamp      time.Time
	Sequence       int64
	PrevHash       string
	RecordHash     string
	Description    string
}

// Posting is one signed leg of a transaction. Credits are positive, debits
// are negative; every transaction's postings sum to zero.
type Posting struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Amount        money.Money
	Timestamp     time.Time
}

// PostingPair builds the two legs of a double-entry transaction. Transfer
// and Pix operations use this directly; Deposit/Withdraw route one leg to
// the treasury account.
type PostingPair struct {
	Debit  Posting
	Credit Posting
}

// Sum returns the signed total of the pair; callers assert it is zero
// before flushing.
func (p PostingPair) Sum() money.Money {
	return p.Debit.Amount.Add(p.Credit.Amount)
}

// IntegrityReason names why verify_integrity rejected a transaction.
type IntegrityReason string

const (
	ReasonHashMismatch      IntegrityReason = "HASH_MISMATCH"
	ReasonPostingsImbalance IntegrityReason = "POSTINGS_IMBALANCE"
)

// IntegrityResult is the outcome of a full-chain scan.
type IntegrityResult struct {
	OK              bool
	Count           int64
	FailedTxID      uuid.UUID
	FailedSequence  int64
	Reason          IntegrityReason
}
