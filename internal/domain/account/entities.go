// Package account holds the entities owned by the account store: User,
// Account, PixKey, LimitConfig, and KycProfile. The ledger store (package
// ledger) is the only other owner of persistent state; everything in this
// package is mutable, row-locked, read-modify-write data.
package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/internal/domain/money"
)

// AccountType enumerates the product types a checking/savings-style account
// can carry. TREASURY is reserved for the system sink/source account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeSalary     AccountType = "SALARY"
	AccountTypeDigital    AccountType = "DIGITAL"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeTreasury   AccountType = "TREASURY"
)

// Status enumerates account lifecycle states. CLOSED is terminal.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
	StatusClosed  Status = "CLOSED"
)

// Account is one ledger-bearing account. Balance is a cached, derived
// field; the source of truth is always the sum of the account's postings.
type Account struct {
	ID             uuid.UUID
	AccountNumber  string
	UserID         uuid.UUID
	Balance        money.Money
	BlockedBalance money.Money
	OverdraftLimit money.Money
	AccountType    AccountType
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the account can take part in a mutation.
func (a Account) IsActive() bool {
	return a.Status == StatusActive
}

// Available returns derived_balance - blocked_balance + overdraft_limit,
// the figure every debit is checked against.
func (a Account) Available(derivedBalance money.Money) money.Money {
	return derivedBalance.Sub(a.BlockedBalance).Add(a.OverdraftLimit)
}

// IsTreasury reports whether this is the reserved system account.
func (a Account) IsTreasury() bool {
	return a.AccountType == AccountTypeTreasury
}

// User is an account holder. CPF (Brazilian national id) is stored as a
// one-way hash for equality checks plus a separately reversible ciphertext
// for audit output; equality never goes through decryption.
type User struct {
	ID            uuid.UUID
	Email         string
	CPFHash       string
	CPFCiphertext string
	CPFLast4      string
	PasswordHash  string
	MFASecret     string
	MFAEnabled    bool
	IsAnonymized  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AnonymizedSentinel replaces CPFHash/Email on a right-to-be-forgotten
// anonymization; CPFCiphertext is erased outright.
const AnonymizedSentinel = "ANONYMIZED"

// Anonymize scrubs PII in place for a "right to be forgotten" request.
func (u *User) Anonymize() {
	u.Email = AnonymizedSentinel
	u.CPFHash = AnonymizedSentinel
	u.CPFCiphertext = ""
	u.CPFLast4 = ""
	u.MFASecret = ""
	u.MFAEnabled = false
	u.IsAnonymized = true
}

// PixKeyType enumerates the four Pix key namespaces.
type PixKeyType string

const (
	PixKeyCPF   PixKeyType = "CPF"
	PixKeyEmail PixKeyType = "EMAIL"
	PixKeyPhone PixKeyType = "PHONE"
	PixKeyEVP   PixKeyType = "EVP"
)

// PixKey maps a unique public key string to the account it routes to.
type PixKey struct {
	ID        uuid.UUID
	Key       string
	KeyType   PixKeyType
	AccountID uuid.UUID
	CreatedAt time.Time
}

// LimitConfig holds per-user operation caps. A zero value field means "no
// configured cap" is treated as unlimited only where the engine explicitly
// documents that; in this repo every threshold is required at signup time.
type LimitConfig struct {
	UserID              uuid.UUID
	WithdrawalDailyCap  money.Money
	TransferDailyCap    money.Money
	TEDDailyCap         money.Money
	PixPerTxCap         money.Money
	PixDailyCap         money.Money
}

// KycStatus enumerates identity-verification states.
type KycStatus string

const (
	KycPending  KycStatus = "PENDING"
	KycVerified KycStatus = "VERIFIED"
	KycRejected KycStatus = "REJECTED"
)

// RiskLevel is a coarse KYC risk band used by the fraud hook and by limit
// policy decisions downstream of the core.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// KycProfile is the per-user identity-verification record.
type KycProfile struct {
	UserID    uuid.UUID
	Status    KycStatus
	RiskLevel RiskLevel
	UpdatedAt time.Time
}

// IsVerified reports whether the profile clears the KYC gate.
func (k KycProfile) IsVerified() bool {
	return k.Status == KycVerified
}
