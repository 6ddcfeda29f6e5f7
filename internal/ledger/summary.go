package ledger

import (
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Summary bundles what the summary report and the advisor need.
type Summary struct {
	Budget       decimal.Decimal
	Count        int
	Totals       Totals
	TopPurposes  []Spending
	TopCustomers []Spending
}

// Summarize computes a Summary using the given travel keywords (nil means
// DefaultTravelKeywords).
func Summarize(transactions []models.Transaction, budget decimal.Decimal, travelKeywords []string) Summary {
	return Summary{
		Budget:       budget,
		Count:        len(transactions),
		Totals:       TotalsWithKeywords(transactions, budget, travelKeywords),
		TopPurposes:  TopSpendingBy(transactions, ByPurpose),
		TopCustomers: TopSpendingBy(transactions, ByCustomer),
	}
}
