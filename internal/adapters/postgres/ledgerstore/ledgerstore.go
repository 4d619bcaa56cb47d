package ledgerstore

import (
	"context"
	"database/sql"
	"errors"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ledgercore/ledger-core/common"
	cn "github.com/ledgercore/ledger-core/common/constant"
	"github.com/ledgercore/ledger-core/common/dbtx"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// pgUniqueViolation is the Postgres SQLSTATE for a unique-constraint
// violation (23505). The command layer relies on this to distinguish an
// idempotency-key/sequence race from any other write failure.
const pgUniqueViolation = "23505"

// PostgreSQLLedgerStore is a Postgres-specific implementation of
// ports.LedgerStore.
type PostgreSQLLedgerStore struct {
	db *sql.DB
}

// New returns a PostgreSQLLedgerStore bound to the given primary handle.
func New(db *sql.DB) *PostgreSQLLedgerStore {
	return &PostgreSQLLedgerStore{db: db}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, surfaced so the command layer can map it to a conflict plus
// idempotency re-resolution.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Append inserts the transaction row and then each posting row, one
// statement per row, on the executor carried by ctx.
// Neither transactions nor postings expose an Update/Delete method
// anywhere in this package; this is the only write path.
func (s *PostgreSQLLedgerStore) Append(ctx context.Context, tx ledger.Transaction, postings []ledger.Posting) error {
	exec := dbtx.GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `
INSERT INTO transactions (id, account_id, idempotency_key, amount, operation_type, timestamp, sequence, prev_hash, record_hash, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		tx.ID, tx.AccountID, tx.IdempotencyKey, tx.Amount, tx.OperationType, tx.Timestamp, tx.Sequence, tx.PrevHash, tx.RecordHash, tx.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			return cn.ErrTransactionConflict
		}

		return common.ValidateInternalError(err, "Transaction")
	}

	for _, p := range postings {
		if _, err := exec.ExecContext(ctx, `
INSERT INTO postings (id, transaction_id, account_id, amount, timestamp)
VALUES ($1, $2, $3, $4, $5)`, p.ID, p.TransactionID, p.AccountID, p.Amount, p.Timestamp); err != nil {
			if IsUniqueViolation(err) {
				return cn.ErrTransactionConflict
			}

			return common.ValidateInternalError(err, "Posting")
		}
	}

	return nil
}

// SumDebitsToday answers the daily LimitConfig gate: the absolute value of
// every debit posting of opType against accountID since midnight UTC.
func (s *PostgreSQLLedgerStore) SumDebitsToday(ctx context.Context, accountID uuid.UUID, opType ledger.OperationType) (money.Money, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var sum money.Money

	err := exec.QueryRowContext(ctx, `
SELECT COALESCE(SUM(-p.amount), 0)
FROM postings p
JOIN transactions t ON t.id = p.transaction_id
WHERE p.account_id = $1 AND t.operation_type = $2 AND p.amount < 0
  AND t.timestamp >= date_trunc('day', now() AT TIME ZONE 'UTC')`, accountID, opType).Scan(&sum)
	if err != nil {
		return money.Zero, common.ValidateInternalError(err, "Posting")
	}

	return sum, nil
}

// FindByIdempotency implements the DB-uniqueness-backed idempotency
// check, the authoritative layer under the Redis fast path.
func (s *PostgreSQLLedgerStore) FindByIdempotency(ctx context.Context, accountID uuid.UUID, idempotencyKey string) (*ledger.Transaction, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var m TransactionPostgreSQLModel

	err := exec.QueryRowContext(ctx, `
SELECT id, account_id, idempotency_key, amount, operation_type, timestamp, sequence, prev_hash, record_hash, description
FROM transactions WHERE account_id = $1 AND idempotency_key = $2`, accountID, idempotencyKey).
		Scan(&m.ID, &m.AccountID, &m.IdempotencyKey, &m.Amount, &m.OperationType, &m.Timestamp, &m.Sequence, &m.PrevHash, &m.RecordHash, &m.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, common.ValidateInternalError(err, "Transaction")
	}

	entity := m.ToEntity()

	return &entity, nil
}

// ListStatement answers statement queries: date range, operation-type,
// amount range, and free-text description search, built with squirrel so
// each filter is an optional WHERE clause.
func (s *PostgreSQLLedgerStore) ListStatement(ctx context.Context, accountID uuid.UUID, filter ports.StatementFilter) ([]ledger.Transaction, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	builder := sqrl.StatementBuilder.PlaceholderFormat(sqrl.Dollar).
		Select("id", "account_id", "idempotency_key", "amount", "operation_type", "timestamp", "sequence", "prev_hash", "record_hash", "description").
		From("transactions").
		Where(sqrl.Eq{"account_id": accountID}).
		OrderBy("sequence DESC")

	if filter.From != nil {
		builder = builder.Where(sqrl.GtOrEq{"timestamp": *filter.From})
	}

	if filter.To != nil {
		builder = builder.Where(sqrl.LtOrEq{"timestamp": *filter.To})
	}

	if filter.OpType != nil {
		builder = builder.Where(sqrl.Eq{"operation_type": *filter.OpType})
	}

	if filter.MinAmount != nil {
		builder = builder.Where(sqrl.GtOrEq{"amount": *filter.MinAmount})
	}

	if filter.MaxAmount != nil {
		builder = builder.Where(sqrl.LtOrEq{"amount": *filter.MaxAmount})
	}

	if filter.Search != "" {
		builder = builder.Where(sqrl.Like{"description": "%" + filter.Search + "%"})
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	builder = builder.Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, common.ValidateInternalError(err, "Transaction")
	}

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.ValidateInternalError(err, "Transaction")
	}
	defer rows.Close()

	var results []ledger.Transaction

	for rows.Next() {
		var m TransactionPostgreSQLModel

		if err := rows.Scan(&m.ID, &m.AccountID, &m.IdempotencyKey, &m.Amount, &m.OperationType, &m.Timestamp, &m.Sequence, &m.PrevHash, &m.RecordHash, &m.Description); err != nil {
			return nil, common.ValidateInternalError(err, "Transaction")
		}

		results = append(results, m.ToEntity())
	}

	if err := rows.Err(); err != nil {
		return nil, common.ValidateInternalError(err, "Transaction")
	}

	return results, nil
}

// VerifyIntegrity recomputes every record_hash in ascending sequence
// order and checks that each transaction's postings sum to zero, returning
// the first offending transaction.
func (s *PostgreSQLLedgerStore) VerifyIntegrity(ctx context.Context) (ledger.IntegrityResult, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, account_id, idempotency_key, amount, operation_type, timestamp, sequence, prev_hash, record_hash, description
FROM transactions ORDER BY sequence ASC`)
	if err != nil {
		return ledger.IntegrityResult{}, common.ValidateInternalError(err, "Transaction")
	}
	defer rows.Close()

	var (
		count    int64
		prevHash string
	)

	for rows.Next() {
		var m TransactionPostgreSQLModel

		if err := rows.Scan(&m.ID, &m.AccountID, &m.IdempotencyKey, &m.Amount, &m.OperationType, &m.Timestamp, &m.Sequence, &m.PrevHash, &m.RecordHash, &m.Description); err != nil {
			return ledger.IntegrityResult{}, common.ValidateInternalError(err, "Transaction")
		}

		tx := m.ToEntity()
		count++

		expected := ledger.ComputeRecordHash(tx.Sequence, tx.AccountID, tx.Amount, tx.OperationType, tx.Description, tx.Timestamp, prevHash)
		if expected != tx.RecordHash || tx.PrevHash != prevHash {
			return ledger.IntegrityResult{
				OK:             false,
				Count:          count,
				FailedTxID:     tx.ID,
				FailedSequence: tx.Sequence,
				Reason:         ledger.ReasonHashMismatch,
			}, nil
		}

		sum, err := s.postingsSum(ctx, tx.ID)
		if err != nil {
			return ledger.IntegrityResult{}, err
		}

		if !sum.IsZero() {
			return ledger.IntegrityResult{
				OK:             false,
				Count:          count,
				FailedTxID:     tx.ID,
				FailedSequence: tx.Sequence,
				Reason:         ledger.ReasonPostingsImbalance,
			}, nil
		}

		prevHash = tx.RecordHash
	}

	if err := rows.Err(); err != nil {
		return ledger.IntegrityResult{}, common.ValidateInternalError(err, "Transaction")
	}

	return ledger.IntegrityResult{OK: true, Count: count}, nil
}

func (s *PostgreSQLLedgerStore) postingsSum(ctx context.Context, txID uuid.UUID) (money.Money, error) {
	var sum money.Money

	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM postings WHERE transaction_id = $1`, txID).Scan(&sum)
	if err != nil {
		return money.Zero, common.ValidateInternalError(err, "Posting")
	}

	return sum, nil
}
