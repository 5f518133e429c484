package models

import (
	"github.com/shopspring/decimal"
)

// PerPersonShare returns the canonical share a single payer owes on an
// amount split among payerCount payers. Every payer owes the same
// share.
//
// Shares are rounded half up to two fractional digits, so each share
// is within half a cent of the exact quotient and the shares together
// stray from the amount by at most half a cent per payer. The
// remainder stays with the payee, it is never loaded onto one payer.
//
// A payer count of zero returns zero instead of dividing by it, the
// bill invariants rule that case out but a calculation helper must not
// panic on it.
func PerPersonShare(amount decimal.Decimal, payerCount int) decimal.Decimal {
	if payerCount == 0 {
		return decimal.Zero
	}

	return amount.Div(decimal.NewFromInt(int64(payerCount))).Round(2)
}

// SumShares adds up shares exactly and rounds the result to two
// fractional digits once at the end, not at every step.
func SumShares(shares []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, share := range shares {
		sum = sum.Add(share)
	}

	return sum.Round(2)
}
