package ledgerstore

import (
	"context"
	"database/sql"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/dbtx"
)

// NextSequence atomically increments the single ledger_sequence row and
// returns the new value. It must run on the executor already present in
// ctx (the enclosing database transaction), never on its own transaction,
// so a rollback of the caller also releases the allocated number.
func (s *PostgreSQLLedgerStore) NextSequence(ctx context.Context) (int64, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var value int64

	err := exec.QueryRowContext(ctx, `UPDATE ledger_sequence SET value = value + 1 WHERE id = 1 RETURNING value`).Scan(&value)
	if err == sql.ErrNoRows {
		if _, insertErr := exec.ExecContext(ctx, `INSERT INTO ledger_sequence (id, value) VALUES (1, 0) ON CONFLICT (id) DO NOTHING`); insertErr != nil {
			return 0, common.ValidateInternalError(insertErr, "LedgerSequence")
		}

		return s.NextSequence(ctx)
	}

	if err != nil {
		return 0, common.ValidateInternalError(err, "LedgerSequence")
	}

	return value, nil
}

// PreviousRecordHash returns the record_hash committed at sequence-1, or ""
// for the first transaction in the chain.
func (s *PostgreSQLLedgerStore) PreviousRecordHash(ctx context.Context, sequence int64) (string, error) {
	if sequence <= 1 {
		return "", nil
	}

	exec := dbtx.GetExecutor(ctx, s.db)

	var hash string

	err := exec.QueryRowContext(ctx, `SELECT record_hash FROM transactions WHERE sequence = $1`, sequence-1).Scan(&hash)
	if err == sql.ErrNoRows {
		// NextSequence and this lookup both run against the row-locked
		// ledger_sequence counter, so by the time a caller holds sequence s
		// every committed predecessor must already exist; a miss here means
		// the chain itself is broken, not a benign gap.
		return "", common.ValidateInternalError(err, "Transaction")
	}

	if err != nil {
		return "", common.ValidateInternalError(err, "Transaction")
	}

	return hash, nil
}
