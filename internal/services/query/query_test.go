package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgercore/ledger-core/common"
	cn "github.com/ledgercore/ledger-core/common/constant"
	"github.com/ledgercore/ledger-core/internal/domain/account"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
	"github.com/ledgercore/ledger-core/internal/ports/mocks"
	"github.com/ledgercore/ledger-core/internal/services/query"
)

func TestGetBalance_ReturnsDerivedEvenWhenCachedDiffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	ledgerStore := mocks.NewMockLedgerStore(ctrl)

	accountID := uuid.New()
	cached := money.MustFromString("100.00")
	derived := money.MustFromString("80.00")

	accounts.EXPECT().FindAccountByID(gomock.Any(), accountID).Return(account.Account{
		ID:      accountID,
		Balance: cached,
		Status:  account.StatusActive,
	}, nil)
	accounts.EXPECT().DerivedBalance(gomock.Any(), accountID).Return(derived, nil)

	svc := query.New(accounts, ledgerStore)
	got, err := svc.GetBalance(context.Background(), accountID)

	require.NoError(t, err)
	assert.Equal(t, 0, derived.Cmp(got))
}

func TestGetBalance_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	ledgerStore := mocks.NewMockLedgerStore(ctrl)

	accountID := uuid.New()
	accounts.EXPECT().FindAccountByID(gomock.Any(), accountID).Return(account.Account{}, cn.ErrEntityNotFound)

	svc := query.New(accounts, ledgerStore)
	_, err := svc.GetBalance(context.Background(), accountID)

	require.Error(t, err)
	assert.IsType(t, common.EntityNotFoundError{}, err)
}

func TestGetBalance_DerivedBalanceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	ledgerStore := mocks.NewMockLedgerStore(ctrl)

	accountID := uuid.New()
	accounts.EXPECT().FindAccountByID(gomock.Any(), accountID).Return(account.Account{ID: accountID}, nil)
	accounts.EXPECT().DerivedBalance(gomock.Any(), accountID).Return(money.Zero, errors.New("db unavailable"))

	svc := query.New(accounts, ledgerStore)
	_, err := svc.GetBalance(context.Background(), accountID)

	require.Error(t, err)
}

func TestGetStatement_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	ledgerStore := mocks.NewMockLedgerStore(ctrl)

	accountID := uuid.New()
	filter := ports.StatementFilter{Limit: 10}
	want := []ledger.Transaction{{ID: uuid.New(), AccountID: accountID}}

	ledgerStore.EXPECT().ListStatement(gomock.Any(), accountID, filter).Return(want, nil)

	svc := query.New(accounts, ledgerStore)
	got, err := svc.GetStatement(context.Background(), accountID, filter)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetStatement_PropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	ledgerStore := mocks.NewMockLedgerStore(ctrl)

	accountID := uuid.New()
	ledgerStore.EXPECT().ListStatement(gomock.Any(), accountID, gomock.Any()).Return(nil, errors.New("query timeout"))

	svc := query.New(accounts, ledgerStore)
	_, err := svc.GetStatement(context.Background(), accountID, ports.StatementFilter{})

	require.Error(t, err)
}
