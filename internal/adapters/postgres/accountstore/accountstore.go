package accountstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/dbtx"
	cn "github.com/ledgercore/ledger-core/common/constant"
	"github.com/ledgercore/ledger-core/common/mopentelemetry"
	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// PostgreSQLAccountStore is a Postgres-specific implementation of
// ports.AccountStore.
type PostgreSQLAccountStore struct {
	db *sql.DB
}

// New returns a PostgreSQLAccountStore bound to the given primary handle.
func New(db *sql.DB) *PostgreSQLAccountStore {
	return &PostgreSQLAccountStore{db: db}
}

// LockAccountsByID acquires SELECT ... FOR UPDATE locks on every id,
// always in ascending id order, so that concurrent multi-account
// operations never deadlock.
func (s *PostgreSQLAccountStore) LockAccountsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]account.Account, error) {
	tracer := common.NewTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "accountstore.lock_accounts_by_id")
	defer span.End()

	ordered := append([]uuid.UUID(nil), ids...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	exec := dbtx.GetExecutor(ctx, s.db)

	result := make(map[uuid.UUID]account.Account, len(ordered))

	for _, id := range ordered {
		row := exec.QueryRowContext(ctx, lockByIDQuery, id)

		acc, err := scanAccount(row)
		if errors.Is(err, sql.ErrNoRows) {
			mopentelemetry.HandleSpanError(&span, "account not found for lock", err)
			return nil, cn.ErrAccountNotFound
		}

		if err != nil {
			mopentelemetry.HandleSpanError(&span, "failed to lock account", err)
			return nil, common.ValidateInternalError(err, "Account")
		}

		result[acc.ID] = acc
	}

	return result, nil
}

const lockByIDQuery = `
SELECT id, account_number, user_id, balance, blocked_balance, overdraft_limit, account_type, status, created_at, updated_at
FROM accounts WHERE id = $1 FOR UPDATE`

// FindAccountByID reads an account without acquiring a lock.
func (s *PostgreSQLAccountStore) FindAccountByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	row := exec.QueryRowContext(ctx, `
SELECT id, account_number, user_id, balance, blocked_balance, overdraft_limit, account_type, status, created_at, updated_at
FROM accounts WHERE id = $1`, id)

	acc, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, cn.ErrAccountNotFound
	}

	if err != nil {
		return account.Account{}, common.ValidateInternalError(err, "Account")
	}

	return acc, nil
}

// FindAccountByNumber reads an account by its unique external id.
func (s *PostgreSQLAccountStore) FindAccountByNumber(ctx context.Context, accountNumber string) (account.Account, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	row := exec.QueryRowContext(ctx, `
SELECT id, account_number, user_id, balance, blocked_balance, overdraft_limit, account_type, status, created_at, updated_at
FROM accounts WHERE account_number = $1`, accountNumber)

	acc, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, cn.ErrAccountNotFound
	}

	if err != nil {
		return account.Account{}, common.ValidateInternalError(err, "Account")
	}

	return acc, nil
}

// FindOrCreateTreasury returns the reserved system account, auto-
// provisioning it on first use under a dedicated system user row.
func (s *PostgreSQLAccountStore) FindOrCreateTreasury(ctx context.Context) (account.Account, error) {
	acc, err := s.FindAccountByNumber(ctx, ledger.TreasuryAccountNumber)
	if err == nil {
		return acc, nil
	}

	if !errors.Is(err, cn.ErrAccountNotFound) {
		return account.Account{}, err
	}

	exec := dbtx.GetExecutor(ctx, s.db)

	treasuryID := common.GenerateUUIDv7()
	systemUserID := common.GenerateUUIDv7()

	_, err = exec.ExecContext(ctx, `
INSERT INTO users (id, email, cpf_hash, cpf_ciphertext, cpf_last4, password_hash, mfa_enabled, is_anonymized)
VALUES ($1, $2, $3, '', '', '', false, false)
ON CONFLICT (email) DO NOTHING`, systemUserID, "treasury@system.internal", "system-treasury")
	if err != nil {
		return account.Account{}, common.ValidateInternalError(err, "User")
	}

	_, err = exec.ExecContext(ctx, `
INSERT INTO accounts (id, account_number, user_id, balance, blocked_balance, overdraft_limit, account_type, status)
VALUES ($1, $2, $3, 0, 0, 0, $4, $5)
ON CONFLICT (account_number) DO NOTHING`,
		treasuryID, ledger.TreasuryAccountNumber, systemUserID, account.AccountTypeTreasury, account.StatusActive)
	if err != nil {
		return account.Account{}, common.ValidateInternalError(err, "Account")
	}

	return s.FindAccountByNumber(ctx, ledger.TreasuryAccountNumber)
}

// ApplyBalanceDelta adjusts the cached balance column under the caller's
// already-held row lock. It never re-derives or re-locks the row.
func (s *PostgreSQLAccountStore) ApplyBalanceDelta(ctx context.Context, accountID uuid.UUID, delta money.Money) error {
	exec := dbtx.GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = now() WHERE id = $2`, delta, accountID)
	if err != nil {
		return common.ValidateInternalError(err, "Account")
	}

	return nil
}

// DerivedBalance sums accountID's postings — the source of truth the
// balance query and the availability check use; the cached balance column
// is never trusted on its own.
func (s *PostgreSQLAccountStore) DerivedBalance(ctx context.Context, accountID uuid.UUID) (money.Money, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var sum money.Money

	err := exec.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM postings WHERE account_id = $1`, accountID).Scan(&sum)
	if err != nil {
		return money.Zero, common.ValidateInternalError(err, "Posting")
	}

	return sum, nil
}

func (s *PostgreSQLAccountStore) FindKycProfile(ctx context.Context, userID uuid.UUID) (account.KycProfile, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var m KycPostgreSQLModel

	err := exec.QueryRowContext(ctx, `SELECT user_id, status, risk_level, updated_at FROM kyc_profiles WHERE user_id = $1`, userID).
		Scan(&m.UserID, &m.Status, &m.RiskLevel, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return account.KycProfile{UserID: userID, Status: account.KycPending, RiskLevel: account.RiskLow}, nil
	}

	if err != nil {
		return account.KycProfile{}, common.ValidateInternalError(err, "KycProfile")
	}

	return m.ToEntity(), nil
}

func (s *PostgreSQLAccountStore) FindLimitConfig(ctx context.Context, userID uuid.UUID) (account.LimitConfig, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var m LimitConfigPostgreSQLModel

	err := exec.QueryRowContext(ctx, `
SELECT user_id, withdrawal_daily_cap, transfer_daily_cap, ted_daily_cap, pix_per_tx_cap, pix_daily_cap
FROM limit_configs WHERE user_id = $1`, userID).
		Scan(&m.UserID, &m.WithdrawalDailyCap, &m.TransferDailyCap, &m.TEDDailyCap, &m.PixPerTxCap, &m.PixDailyCap)
	if errors.Is(err, sql.ErrNoRows) {
		return account.LimitConfig{}, fmt.Errorf("limit config: %w", cn.ErrEntityNotFound)
	}

	if err != nil {
		return account.LimitConfig{}, common.ValidateInternalError(err, "LimitConfig")
	}

	return m.ToEntity(), nil
}

func (s *PostgreSQLAccountStore) FindPixKey(ctx context.Context, key string) (account.PixKey, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var m PixKeyPostgreSQLModel

	err := exec.QueryRowContext(ctx, `SELECT id, key, key_type, account_id, created_at FROM pix_keys WHERE key = $1`, key).
		Scan(&m.ID, &m.Key, &m.KeyType, &m.AccountID, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return account.PixKey{}, cn.ErrPixKeyNotFound
	}

	if err != nil {
		return account.PixKey{}, common.ValidateInternalError(err, "PixKey")
	}

	return m.ToEntity(), nil
}

func (s *PostgreSQLAccountStore) CreatePixKey(ctx context.Context, key account.PixKey) error {
	exec := dbtx.GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `
INSERT INTO pix_keys (id, key, key_type, account_id) VALUES ($1, $2, $3, $4)`,
		key.ID, key.Key, key.KeyType, key.AccountID)
	if err != nil {
		return common.ValidateInternalError(err, "PixKey")
	}

	return nil
}

func (s *PostgreSQLAccountStore) FindUserByID(ctx context.Context, id uuid.UUID) (account.User, error) {
	exec := dbtx.GetExecutor(ctx, s.db)

	var m UserPostgreSQLModel

	err := exec.QueryRowContext(ctx, `
SELECT id, email, cpf_hash, cpf_ciphertext, cpf_last4, password_hash, mfa_secret, mfa_enabled, is_anonymized, created_at, updated_at
FROM users WHERE id = $1`, id).
		Scan(&m.ID, &m.Email, &m.CPFHash, &m.CPFCiphertext, &m.CPFLast4, &m.PasswordHash, &m.MFASecret, &m.MFAEnabled, &m.IsAnonymized, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return account.User{}, fmt.Errorf("user: %w", cn.ErrEntityNotFound)
	}

	if err != nil {
		return account.User{}, common.ValidateInternalError(err, "User")
	}

	return m.ToEntity(), nil
}

func scanAccount(row *sql.Row) (account.Account, error) {
	var m AccountPostgreSQLModel

	err := row.Scan(&m.ID, &m.AccountNumber, &m.UserID, &m.Balance, &m.BlockedBalance, &m.OverdraftLimit, &m.AccountType, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return account.Account{}, err
	}

	return m.ToEntity(), nil
}
