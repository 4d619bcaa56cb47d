package local_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercore/ledger-core/internal/adapters/local"
)

func TestAESGCMTokenVault_RoundTrip(t *testing.T) {
	vault, err := local.NewAESGCMTokenVault([]byte("test-master-secret-at-least-32-bytes!!"))
	require.NoError(t, err)

	token, err := vault.Tokenize(context.Background(), "12345678900", "CPF")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	plaintext, err := vault.Detokenize(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "12345678900", plaintext)
}

func TestAESGCMTokenVault_DeterministicForSameInput(t *testing.T) {
	vault, err := local.NewAESGCMTokenVault([]byte("test-master-secret-at-least-32-bytes!!"))
	require.NoError(t, err)

	tokenA, err := vault.Tokenize(context.Background(), "12345678900", "CPF")
	require.NoError(t, err)

	tokenB, err := vault.Tokenize(context.Background(), "12345678900", "CPF")
	require.NoError(t, err)

	assert.Equal(t, tokenA, tokenB)
}

func TestAESGCMTokenVault_DifferentValueTypesDiffer(t *testing.T) {
	vault, err := local.NewAESGCMTokenVault([]byte("test-master-secret-at-least-32-bytes!!"))
	require.NoError(t, err)

	tokenCPF, err := vault.Tokenize(context.Background(), "user@example.com", "CPF")
	require.NoError(t, err)

	tokenEmail, err := vault.Tokenize(context.Background(), "user@example.com", "EMAIL")
	require.NoError(t, err)

	assert.NotEqual(t, tokenCPF, tokenEmail)
}

func TestAESGCMTokenVault_Detokenize_RejectsMalformedToken(t *testing.T) {
	vault, err := local.NewAESGCMTokenVault([]byte("test-master-secret-at-least-32-bytes!!"))
	require.NoError(t, err)

	_, err = vault.Detokenize(context.Background(), "not-a-real-token")
	assert.Error(t, err)
}
