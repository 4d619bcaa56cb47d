// Package command is the transaction engine: the single pipeline every
// mutating ledger operation (deposit, withdraw, internal transfer, Pix
// transfer) flows through.
package command

import "github.com/ledgercore/ledger-core/internal/domain/money"

// Thresholds holds the amount boundaries the policy gates and the AML
// post-commit hook compare against.
type Thresholds struct {
	KYCThreshold money.Money
	MFAThreshold money.Money
	AMLThreshold money.Money
}

// DefaultThresholds carries the stock policy boundaries: step-up MFA at
// R$1000.00. Production deployments override these from configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		KYCThreshold: money.NewFromInt(5000),
		MFAThreshold: money.NewFromInt(1000),
		AMLThreshold: money.NewFromInt(10000),
	}
}
