package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// timestampLayout is the canonical timestamp format used by both the write
// path and verify_integrity: RFC-3339 UTC with microsecond precision. Fixed
// once; any deviation between the two paths breaks chain verification.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTimestamp renders t in the canonical hash-chain format. The write
// path and VerifyIntegrity both reach it through ComputeRecordHash, never
// time.Format directly, so the digest stays byte-reproducible.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// CanonicalTuple builds the exact string that is SHA-256'd into RecordHash.
// Field order is part of the on-disk contract and must never change once
// any transaction has been committed with it.
func CanonicalTuple(sequence int64, accountID uuid.UUID, amount money.Money, opType OperationType, description string, timestamp time.Time, prevHash string) string {
	fields := []string{
		strconv.FormatInt(sequence, 10),
		accountID.String(),
		amount.String(),
		string(opType),
		description,
		FormatTimestamp(timestamp),
		prevHash,
	}

	return strings.Join(fields, "|")
}

// ComputeRecordHash computes the SHA-256 digest of CanonicalTuple, hex
// encoded. This is the single function the write path and verify_integrity
// both call; a divergence between the two would manifest as false-positive
// HASH_MISMATCH failures across every record after the divergence point.
func ComputeRecordHash(sequence int64, accountID uuid.UUID, amount money.Money, opType OperationType, description string, timestamp time.Time, prevHash string) string {
	sum := sha256.Sum256([]byte(CanonicalTuple(sequence, accountID, amount, opType, description, timestamp, prevHash)))
	return hex.EncodeToString(sum[:])
}

// ComputeTransactionHash is ComputeRecordHash applied to an already
// populated Transaction (sequence, prev hash, and timestamp must already be
// set by the caller).
func ComputeTransactionHash(tx Transaction) string {
	return ComputeRecordHash(tx.Sequence, tx.AccountID, tx.Amount, tx.OperationType, tx.Description, tx.Timestamp, tx.PrevHash)
}

