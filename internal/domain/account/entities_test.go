package account_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/money"
)

func TestAccount_IsActive(t *testing.T) {
	active := account.Account{Status: account.StatusActive}
	blocked := account.Account{Status: account.StatusBlocked}
	closed := account.Account{Status: account.StatusClosed}

	assert.True(t, active.IsActive())
	assert.False(t, blocked.IsActive())
	assert.False(t, closed.IsActive())
}

func TestAccount_IsTreasury(t *testing.T) {
	treasury := account.Account{AccountType: account.AccountTypeTreasury}
	checking := account.Account{AccountType: account.AccountTypeChecking}

	assert.True(t, treasury.IsTreasury())
	assert.False(t, checking.IsTreasury())
}

func TestAccount_Available(t *testing.T) {
	acc := account.Account{
		BlockedBalance: money.MustFromString("50.00"),
		OverdraftLimit: money.MustFromString("100.00"),
	}
	derived := money.MustFromString("200.00")

	got := acc.Available(derived)

	assert.Equal(t, 0, got.Cmp(money.MustFromString("250.00")))
}

func TestAccount_Available_NoOverdraftNoBlocked(t *testing.T) {
	acc := account.Account{}
	derived := money.MustFromString("30.00")

	got := acc.Available(derived)

	assert.Equal(t, 0, got.Cmp(derived))
}

func TestUser_Anonymize(t *testing.T) {
	u := account.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		CPFHash:       "hash123",
		CPFCiphertext: "cipher456",
		CPFLast4:      "1234",
		MFASecret:     "secret",
		MFAEnabled:    true,
	}

	u.Anonymize()

	assert.Equal(t, account.AnonymizedSentinel, u.Email)
	assert.Equal(t, account.AnonymizedSentinel, u.CPFHash)
	assert.Empty(t, u.CPFCiphertext)
	assert.Empty(t, u.CPFLast4)
	assert.Empty(t, u.MFASecret)
	assert.False(t, u.MFAEnabled)
	assert.True(t, u.IsAnonymized)
}

func TestKycProfile_IsVerified(t *testing.T) {
	verified := account.KycProfile{Status: account.KycVerified}
	pending := account.KycProfile{Status: account.KycPending}
	rejected := account.KycProfile{Status: account.KycRejected}

	assert.True(t, verified.IsVerified())
	assert.False(t, pending.IsVerified())
	assert.False(t, rejected.IsVerified())
}
