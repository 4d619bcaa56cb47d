// Package query implements the read-only operations, kept separate from
// internal/services/command since neither needs a database transaction or
// account locks.
package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
)

// Service answers get_balance/get_statement against the same ports the
// Transaction Engine writes through.
type Service struct {
	Accounts ports.AccountStore
	Ledger   ports.LedgerStore
}

// New returns a query Service.
func New(accounts ports.AccountStore, ledger ports.LedgerStore) *Service {
	return &Service{Accounts: accounts, Ledger: ledger}
}

// GetBalance always derives the balance from the postings sum and logs
// (never silently swaps in) a mismatch against the cached balance column.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Money, error) {
	tracer := common.NewTracerFromContext(ctx)
	logger := common.NewLoggerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_balance")
	defer span.End()

	acc, err := s.Accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		return money.Zero, common.ValidateBusinessError(err, "Account")
	}

	derived, err := s.Accounts.DerivedBalance(ctx, accountID)
	if err != nil {
		return money.Zero, common.ValidateBusinessError(err, "Account")
	}

	if derived.Cmp(acc.Balance) != 0 {
		logger.Warnf("account %s cached balance %s disagrees with derived balance %s", accountID, acc.Balance, derived)
	}

	return derived, nil
}

// GetStatement lists a range-filtered, paginated view of an account's
// transactions.
func (s *Service) GetStatement(ctx context.Context, accountID uuid.UUID, filter ports.StatementFilter) ([]ledger.Transaction, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_statement")
	defer span.End()

	results, err := s.Ledger.ListStatement(ctx, accountID, filter)
	if err != nil {
		return nil, common.ValidateBusinessError(err, "Transaction")
	}

	return results, nil
}
