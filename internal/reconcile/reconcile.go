package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

// Status labels the sign of the day's discrepancy.
type Status string

const (
	StatusBalanced Status = "balanced"
	StatusExcess   Status = "excess"
	StatusMissing  Status = "missing"
)

// BalancedTolerance is the largest absolute difference still reported as
// balanced. Differences below half a cent are rounding noise.
var BalancedTolerance = decimal.New(5, -3)

// BalanceReport is the till-reconciliation worksheet for one day.
type BalanceReport struct {
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	Sales           decimal.Decimal
	PettyCash       decimal.Decimal
	Purchases       decimal.Decimal
	Payments        decimal.Decimal
	CheckingBalance decimal.Decimal
	Difference      decimal.Decimal
	Status          Status
}

// Total sums the amounts of the given entries. An empty slice sums to zero.
func Total(entries []ledger.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount())
	}
	return total
}

// Reconcile derives the checking balance and discrepancy:
//
//	checking   = (pettyCash + purchases + closingBalance) - (payments + openingBalance)
//	difference = checking - sales
//
// Missing categories contribute zero.
func Reconcile(entries map[ledger.Category][]ledger.Entry) BalanceReport {
	r := BalanceReport{
		OpeningBalance: Total(entries[ledger.CategoryOpeningBalance]),
		ClosingBalance: Total(entries[ledger.CategoryClosingBalance]),
		Sales:          Total(entries[ledger.CategorySales]),
		PettyCash:      Total(entries[ledger.CategoryPettyCash]),
		Purchases:      Total(entries[ledger.CategoryPurchase]),
		Payments:       Total(entries[ledger.CategoryPayment]),
	}

	in := r.PettyCash.Add(r.Purchases).Add(r.ClosingBalance)
	out := r.Payments.Add(r.OpeningBalance)
	r.CheckingBalance = in.Sub(out)
	r.Difference = r.CheckingBalance.Sub(r.Sales)
	r.Status = StatusFor(r.Difference)
	return r
}

// StatusFor classifies a difference using BalancedTolerance.
func StatusFor(difference decimal.Decimal) Status {
	switch {
	case difference.Abs().LessThan(BalancedTolerance):
		return StatusBalanced
	case difference.IsPositive():
		return StatusExcess
	default:
		return StatusMissing
	}
}
