package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

func TestComputeRecordHash_Deterministic(t *testing.T) {
	acc := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 123000, time.UTC)
	amt := money.MustFromString("10.00")

	h1 := ledger.ComputeRecordHash(1, acc, amt, ledger.OperationDeposit, "", ts, "")
	h2 := ledger.ComputeRecordHash(1, acc, amt, ledger.OperationDeposit, "", ts, "")

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestComputeRecordHash_FieldSensitivity(t *testing.T) {
	acc := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	amt := money.MustFromString("10.00")

	base := ledger.ComputeRecordHash(1, acc, amt, ledger.OperationDeposit, "desc", ts, "prev")
	changedDesc := ledger.ComputeRecordHash(1, acc, amt, ledger.OperationDeposit, "other", ts, "prev")
	changedPrev := ledger.ComputeRecordHash(1, acc, amt, ledger.OperationDeposit, "desc", ts, "other-prev")
	changedAmount := ledger.ComputeRecordHash(1, acc, money.MustFromString("10.01"), ledger.OperationDeposit, "desc", ts, "prev")

	assert.NotEqual(t, base, changedDesc)
	assert.NotEqual(t, base, changedPrev)
	assert.NotEqual(t, base, changedAmount)
}

func TestComputeTransactionHash_ChainLink(t *testing.T) {
	acc := uuid.New()
	ts := time.Now()

	first := ledger.Transaction{
		Sequence:      1,
		AccountID:     acc,
		Amount:        money.MustFromString("5.00"),
		OperationType: ledger.OperationDeposit,
		Timestamp:     ts,
		PrevHash:      "",
	}
	first.RecordHash = ledger.ComputeTransactionHash(first)

	second := ledger.Transaction{
		Sequence:      2,
		AccountID:     acc,
		Amount:        money.MustFromString("7.50"),
		OperationType: ledger.OperationWithdraw,
		Timestamp:     ts.Add(time.Second),
		PrevHash:      first.RecordHash,
	}
	second.RecordHash = ledger.ComputeTransactionHash(second)

	assert.Equal(t, first.RecordHash, second.PrevHash)
	assert.NotEqual(t, first.RecordHash, second.RecordHash)
}

func TestFormatTimestamp_MicrosecondPrecision(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 890123000, time.UTC)
	assert.Equal(t, "2026-03-04T05:06:07.890123Z", ledger.FormatTimestamp(ts))
}

func TestPostingPair_SumZero(t *testing.T) {
	txID := uuid.New()
	pair := ledger.PostingPair{
		Debit:  ledger.Posting{TransactionID: txID, Amount: money.MustFromString("-10.00")},
		Credit: ledger.Posting{TransactionID: txID, Amount: money.MustFromString("10.00")},
	}

	assert.True(t, pair.Sum().IsZero())
}
