package local_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/ledger-core/internal/adapters/local"
	"github.com/ledgercore/ledger-core/internal/domain/account"
)

type fakeSecretLookup struct {
	users map[uuid.UUID]account.User
}

func (f *fakeSecretLookup) FindUserByID(_ context.Context, id uuid.UUID) (account.User, error) {
	return f.users[id], nil
}

func TestTOTPValidator_ValidCodeSucceeds(t *testing.T) {
	userID := uuid.New()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "ledger-core", AccountName: "test"})
	require.NoError(t, err)

	lookup := &fakeSecretLookup{users: map[uuid.UUID]account.User{
		userID: {ID: userID, MFAEnabled: true, MFASecret: key.Secret()},
	}}

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	validator := local.NewTOTPValidator(lookup)
	ok, err := validator.ValidateSecondFactor(context.Background(), userID, code)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTOTPValidator_WrongCodeFails(t *testing.T) {
	userID := uuid.New()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "ledger-core", AccountName: "test"})
	require.NoError(t, err)

	lookup := &fakeSecretLookup{users: map[uuid.UUID]account.User{
		userID: {ID: userID, MFAEnabled: true, MFASecret: key.Secret()},
	}}

	validator := local.NewTOTPValidator(lookup)
	ok, err := validator.ValidateSecondFactor(context.Background(), userID, "000000")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTOTPValidator_BackupCodeConsumedOnce(t *testing.T) {
	userID := uuid.New()

	lookup := &fakeSecretLookup{users: map[uuid.UUID]account.User{
		userID: {ID: userID, MFAEnabled: false},
	}}

	validator := local.NewTOTPValidator(lookup)
	validator.SeedBackupCodes(userID, []string{"backup-code-1", "backup-code-2"})

	ok, err := validator.ValidateSecondFactor(context.Background(), userID, "backup-code-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validator.ValidateSecondFactor(context.Background(), userID, "backup-code-1")
	require.NoError(t, err)
	assert.False(t, ok, "a consumed backup code must not be replayable")
}

func TestTOTPValidator_UnknownCodeFails(t *testing.T) {
	userID := uuid.New()

	lookup := &fakeSecretLookup{users: map[uuid.UUID]account.User{
		userID: {ID: userID},
	}}

	validator := local.NewTOTPValidator(lookup)
	ok, err := validator.ValidateSecondFactor(context.Background(), userID, "nonexistent")

	require.NoError(t, err)
	assert.False(t, ok)
}
