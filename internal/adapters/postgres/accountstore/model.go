// Package accountstore is the Postgres-backed account store: accounts,
// users, KYC profiles, limit configs and Pix keys, with the pessimistic
// row locking the engine needs for multi-account operations.
package accountstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// AccountPostgreSQLModel is the row-scanning shape for the accounts table,
// keeping driver-specific null types out of the domain Account struct.
type AccountPostgreSQLModel struct {
	ID             string
	AccountNumber  string
	UserID         string
	Balance        money.Money
	BlockedBalance money.Money
	OverdraftLimit money.Money
	AccountType    string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToEntity converts a scanned row into the domain Account.
func (m *AccountPostgreSQLModel) ToEntity() account.Account {
	return account.Account{
		ID:             uuid.MustParse(m.ID),
		AccountNumber:  m.AccountNumber,
		UserID:         uuid.MustParse(m.UserID),
		Balance:        m.Balance,
		BlockedBalance: m.BlockedBalance,
		OverdraftLimit: m.OverdraftLimit,
		AccountType:    account.AccountType(m.AccountType),
		Status:         account.Status(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UserPostgreSQLModel is the row-scanning shape for the users table.
type UserPostgreSQLModel struct {
	ID            string
	Email         string
	CPFHash       string
	CPFCiphertext string
	CPFLast4      string
	PasswordHash  string
	MFASecret     sql.NullString
	MFAEnabled    bool
	IsAnonymized  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToEntity converts a scanned row into the domain User.
func (m *UserPostgreSQLModel) ToEntity() account.User {
	return account.User{
		ID:            uuid.MustParse(m.ID),
		Email:         m.Email,
		CPFHash:       m.CPFHash,
		CPFCiphertext: m.CPFCiphertext,
		CPFLast4:      m.CPFLast4,
		PasswordHash:  m.PasswordHash,
		MFASecret:     m.MFASecret.String,
		MFAEnabled:    m.MFAEnabled,
		IsAnonymized:  m.IsAnonymized,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// KycPostgreSQLModel is the row-scanning shape for kyc_profiles.
type KycPostgreSQLModel struct {
	UserID    string
	Status    string
	RiskLevel string
	UpdatedAt time.Time
}

func (m *KycPostgreSQLModel) ToEntity() account.KycProfile {
	return account.KycProfile{
		UserID:    uuid.MustParse(m.UserID),
		Status:    account.KycStatus(m.Status),
		RiskLevel: account.RiskLevel(m.RiskLevel),
		UpdatedAt: m.UpdatedAt,
	}
}

// LimitConfigPostgreSQLModel is the row-scanning shape for limit_configs.
type LimitConfigPostgreSQLModel struct {
	UserID             string
	WithdrawalDailyCap money.Money
	TransferDailyCap   money.Money
	TEDDailyCap        money.Money
	PixPerTxCap        money.Money
	PixDailyCap        money.Money
}

func (m *LimitConfigPostgreSQLModel) ToEntity() account.LimitConfig {
	return account.LimitConfig{
		UserID:             uuid.MustParse(m.UserID),
		WithdrawalDailyCap: m.WithdrawalDailyCap,
		TransferDailyCap:   m.TransferDailyCap,
		TEDDailyCap:        m.TEDDailyCap,
		PixPerTxCap:        m.PixPerTxCap,
		PixDailyCap:        m.PixDailyCap,
	}
}

// PixKeyPostgreSQLModel is the row-scanning shape for pix_keys.
type PixKeyPostgreSQLModel struct {
	ID        string
	Key       string
	KeyType   string
	AccountID string
	CreatedAt time.Time
}

func (m *PixKeyPostgreSQLModel) ToEntity() account.PixKey {
	return account.PixKey{
		ID:        uuid.MustParse(m.ID),
		Key:       m.Key,
		KeyType:   account.PixKeyType(m.KeyType),
		AccountID: uuid.MustParse(m.AccountID),
		CreatedAt: m.CreatedAt,
	}
}
