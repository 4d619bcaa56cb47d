package ledgerstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/ledgercore/ledger-core/common/constant"
	"github.com/ledgercore/ledger-core/internal/adapters/postgres/ledgerstore"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

var txColumns = []string{
	"id", "account_id", "idempotency_key", "amount", "operation_type",
	"timestamp", "sequence", "prev_hash", "record_hash", "description",
}

// chainOf builds n hash-chained transactions the way the write path would
// have committed them, so VerifyIntegrity recomputes the exact digests.
func chainOf(n int) []ledger.Transaction {
	accountID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	txs := make([]ledger.Transaction, 0, n)
	prevHash := ""

	for i := 1; i <= n; i++ {
		amount := money.NewFromInt(int64(i * 10))
		ts := base.Add(time.Duration(i) * time.Minute)

		tx := ledger.Transaction{
			ID:             uuid.New(),
			AccountID:      accountID,
			IdempotencyKey: fmt.Sprintf("k%d", i),
			Amount:         amount,
			OperationType:  ledger.OperationDeposit,
			Timestamp:      ts,
			Sequence:       int64(i),
			PrevHash:       prevHash,
			Description:    fmt.Sprintf("deposit %d", i),
		}
		tx.RecordHash = ledger.ComputeTransactionHash(tx)

		prevHash = tx.RecordHash
		txs = append(txs, tx)
	}

	return txs
}

func chainRows(txs []ledger.Transaction) *sqlmock.Rows {
	rows := sqlmock.NewRows(txColumns)
	for _, tx := range txs {
		rows.AddRow(tx.ID.String(), tx.AccountID.String(), tx.IdempotencyKey, tx.Amount.String(),
			string(tx.OperationType), tx.Timestamp, tx.Sequence, tx.PrevHash, tx.RecordHash, tx.Description)
	}

	return rows
}

func expectPostingsSum(mock sqlmock.Sqlmock, txID uuid.UUID, sum string) {
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(txID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(sum))
}

func TestNextSequence_Increments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE ledger_sequence SET value").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(42)))

	store := ledgerstore.New(db)

	value, err := store.NextSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextSequence_BootstrapsCounter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Counter row absent: the first allocation must initialize the counter
	// and hand out sequence 1, not 2.
	mock.ExpectQuery("UPDATE ledger_sequence SET value").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectExec("INSERT INTO ledger_sequence").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE ledger_sequence SET value").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(1)))

	store := ledgerstore.New(db)

	value, err := store.NextSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreviousRecordHash_FirstSequence(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := ledgerstore.New(db)

	hash, err := store.PreviousRecordHash(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestPreviousRecordHash_ReadsPredecessor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT record_hash FROM transactions WHERE sequence").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"record_hash"}).AddRow("abc123"))

	store := ledgerstore.New(db)

	hash, err := store.PreviousRecordHash(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "abc123", hash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_WritesTransactionAndBothPostings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tx := chainOf(1)[0]
	now := tx.Timestamp
	pair := []ledger.Posting{
		{ID: uuid.New(), TransactionID: tx.ID, AccountID: uuid.New(), Amount: tx.Amount.Neg(), Timestamp: now},
		{ID: uuid.New(), TransactionID: tx.ID, AccountID: tx.AccountID, Amount: tx.Amount, Timestamp: now},
	}

	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO postings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO postings").WillReturnResult(sqlmock.NewResult(0, 1))

	store := ledgerstore.New(db)

	require.NoError(t, store.Append(context.Background(), tx, pair))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_MapsUniqueViolationToConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := ledgerstore.New(db)

	err = store.Append(context.Background(), chainOf(1)[0], nil)
	assert.ErrorIs(t, err, cn.ErrTransactionConflict)
}

func TestFindByIdempotency_NoRowIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	accountID := uuid.New()

	mock.ExpectQuery("FROM transactions WHERE account_id").
		WithArgs(accountID, "k1").
		WillReturnRows(sqlmock.NewRows(txColumns))

	store := ledgerstore.New(db)

	found, err := store.FindByIdempotency(context.Background(), accountID, "k1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByIdempotency_ReturnsPriorTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tx := chainOf(1)[0]

	mock.ExpectQuery("FROM transactions WHERE account_id").
		WithArgs(tx.AccountID, tx.IdempotencyKey).
		WillReturnRows(chainRows([]ledger.Transaction{tx}))

	store := ledgerstore.New(db)

	found, err := store.FindByIdempotency(context.Background(), tx.AccountID, tx.IdempotencyKey)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, tx.ID, found.ID)
	assert.Equal(t, tx.RecordHash, found.RecordHash)
	assert.Equal(t, 0, tx.Amount.Cmp(found.Amount))
}

func TestVerifyIntegrity_IntactChain(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	txs := chainOf(3)

	mock.ExpectQuery("FROM transactions ORDER BY sequence ASC").
		WillReturnRows(chainRows(txs))
	for _, tx := range txs {
		expectPostingsSum(mock, tx.ID, "0.00")
	}

	store := ledgerstore.New(db)

	result, err := store.VerifyIntegrity(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, int64(3), result.Count)
}

func TestVerifyIntegrity_DetectsTamperedHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Overwrite the middle record_hash: the scan must stop there and name
	// that transaction, not any later one.
	txs := chainOf(3)
	txs[1].RecordHash = "bad"

	mock.ExpectQuery("FROM transactions ORDER BY sequence ASC").
		WillReturnRows(chainRows(txs))
	expectPostingsSum(mock, txs[0].ID, "0.00")

	store := ledgerstore.New(db)

	result, err := store.VerifyIntegrity(context.Background())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, txs[1].ID, result.FailedTxID)
	assert.Equal(t, int64(2), result.FailedSequence)
	assert.Equal(t, ledger.ReasonHashMismatch, result.Reason)
}

func TestVerifyIntegrity_DetectsBrokenLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The middle record's digest is recomputed over its predecessor's
	// record_hash and its stored prev_hash is compared against that hash,
	// so a severed link surfaces as a hash mismatch too.
	txs := chainOf(3)
	txs[1].PrevHash = ""

	mock.ExpectQuery("FROM transactions ORDER BY sequence ASC").
		WillReturnRows(chainRows(txs))
	expectPostingsSum(mock, txs[0].ID, "0.00")

	store := ledgerstore.New(db)

	result, err := store.VerifyIntegrity(context.Background())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, txs[1].ID, result.FailedTxID)
	assert.Equal(t, ledger.ReasonHashMismatch, result.Reason)
}

func TestVerifyIntegrity_DetectsPostingImbalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	txs := chainOf(2)

	mock.ExpectQuery("FROM transactions ORDER BY sequence ASC").
		WillReturnRows(chainRows(txs))
	expectPostingsSum(mock, txs[0].ID, "0.00")
	expectPostingsSum(mock, txs[1].ID, "1.00")

	store := ledgerstore.New(db)

	result, err := store.VerifyIntegrity(context.Background())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, txs[1].ID, result.FailedTxID)
	assert.Equal(t, ledger.ReasonPostingsImbalance, result.Reason)
}

func TestVerifyIntegrity_EmptyLedger(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM transactions ORDER BY sequence ASC").
		WillReturnRows(sqlmock.NewRows(txColumns))

	store := ledgerstore.New(db)

	result, err := store.VerifyIntegrity(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Zero(t, result.Count)
}
