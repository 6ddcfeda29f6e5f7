package ledger

import (
	"strings"

	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Totals is the budget position derived from a transaction list.
// TravelAmount overlaps the two bill buckets; it is never added to them.
type Totals struct {
	WithBillAmount    decimal.Decimal
	WithoutBillAmount decimal.Decimal
	TravelAmount      decimal.Decimal
	RemainingBalance  decimal.Decimal
}

// TotalSpent is WithBillAmount + WithoutBillAmount.
func (t Totals) TotalSpent() decimal.Decimal {
	return t.WithBillAmount.Add(t.WithoutBillAmount)
}

// ComputeTotals partitions spending by bill type, sums travel spending and
// subtracts the total from budget. Negative remaining balances and budgets
// are reported as-is.
func ComputeTotals(transactions []models.Transaction, budget decimal.Decimal) Totals {
	return computeTotals(transactions, budget, IsTravelPurpose)
}

// TotalsWithKeywords is ComputeTotals with a configurable travel keyword list.
func TotalsWithKeywords(transactions []models.Transaction, budget decimal.Decimal, keywords []string) Totals {
	return computeTotals(transactions, budget, TravelMatcher(keywords))
}

func computeTotals(transactions []models.Transaction, budget decimal.Decimal, isTravel func(string) bool) Totals {
	totals := Totals{
		WithBillAmount:    decimal.Zero,
		WithoutBillAmount: decimal.Zero,
		TravelAmount:      decimal.Zero,
	}
	for _, tx := range transactions {
		if tx.BillType == models.WithBill {
			totals.WithBillAmount = totals.WithBillAmount.Add(tx.AmountGiven)
		} else {
			totals.WithoutBillAmount = totals.WithoutBillAmount.Add(tx.AmountGiven)
		}
		if isTravel(tx.Purpose) {
			totals.TravelAmount = totals.TravelAmount.Add(tx.AmountGiven)
		}
	}
	totals.RemainingBalance = budget.Sub(totals.TotalSpent())
	return totals
}

// ParseBudget parses budget text. Non-numeric input, NaN and infinities are
// rejected with an InvalidBudgetError.
func ParseBudget(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, &ledgererror.InvalidBudgetError{Value: text, Reason: "empty value"}
	}
	switch strings.ToLower(strings.TrimLeft(trimmed, "+-")) {
	case "nan", "inf", "infinity":
		return decimal.Zero, &ledgererror.InvalidBudgetError{Value: text, Reason: "must be a finite number"}
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &ledgererror.InvalidBudgetError{Value: text, Reason: "not a number"}
	}
	return value, nil
}
