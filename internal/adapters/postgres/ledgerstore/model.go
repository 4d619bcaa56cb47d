// Package ledgerstore is the Postgres-backed ledger store: append-only
// transactions + postings, the global sequence allocator, and the chain
// integrity scan. No method here ever issues an UPDATE or DELETE against
// transactions or postings; the repository simply does not expose one.
package ledgerstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// TransactionPostgreSQLModel is the row-scanning shape for transactions.
type TransactionPostgreSQLModel struct {
	ID             string
	AccountID      string
	IdempotencyKey string
	Amount         money.Money
	OperationType  string
	Timestamp      time.Time
	Sequence       int64
	PrevHash       string
	RecordHash     string
	Description    string
}

// ToEntity converts a scanned row into the domain Transaction.
func (m *TransactionPostgreSQLModel) ToEntity() ledger.Transaction {
	return ledger.Transaction{
		ID:             uuid.MustParse(m.ID),
		AccountID:      uuid.MustParse(m.AccountID),
		IdempotencyKey: m.IdempotencyKey,
		Amount:         m.Amount,
		OperationType:  ledger.OperationType(m.OperationType),
		Timestamp:      m.Timestamp,
		Sequence:       m.Sequence,
		PrevHash:       m.PrevHash,
		RecordHash:     m.RecordHash,
		Description:    m.Description,
	}
}

// PostingPostgreSQLModel is the row-scanning shape for postings.
type PostingPostgreSQLModel struct {
	ID            string
	TransactionID string
	AccountID     string
	Amount        money.Money
	Timestamp     time.Time
}

func (m *PostingPostgreSQLModel) ToEntity() ledger.Posting {
	return ledger.Posting{
		ID:            uuid.MustParse(m.ID),
		TransactionID: uuid.MustParse(m.TransactionID),
		AccountID:     uuid.MustParse(m.AccountID),
		Amount:        m.Amount,
		Timestamp:     m.Timestamp,
	}
}
