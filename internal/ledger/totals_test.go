package ledger

import (
	"errors"
	"testing"

	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		budget       decimal.Decimal
		withBill     int64
		withoutBill  int64
		travel       int64
		remaining    int64
	}{
		{
			name:      "empty list",
			budget:    dec(30000),
			remaining: 30000,
		},
		{
			name: "split by bill type",
			transactions: []models.Transaction{
				tx("1", "01/01/2024", "Alice", "Milk charges", models.WithBill, 100),
				tx("2", "02/01/2024", "Bob", "Vegetables", models.WithoutBill, 40),
				tx("3", "03/01/2024", "Alice", "Stationary", models.WithBill, 60),
			},
			budget:      dec(1000),
			withBill:    160,
			withoutBill: 40,
			remaining:   800,
		},
		{
			name: "travel overlaps bill buckets",
			transactions: []models.Transaction{
				tx("1", "01/01/2024", "Alice", "Uber charges", models.WithBill, 200),
				tx("2", "01/01/2024", "Alice", "PETROL", models.WithoutBill, 50),
			},
			budget:      dec(1000),
			withBill:    200,
			withoutBill: 50,
			travel:      250,
			remaining:   750,
		},
		{
			name: "overspent budget goes negative",
			transactions: []models.Transaction{
				tx("1", "01/01/2024", "Alice", "Fruits", models.WithBill, 500),
			},
			budget:    dec(100),
			withBill:  500,
			remaining: -400,
		},
		{
			name:      "negative budget is accepted",
			budget:    dec(-10),
			remaining: -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.transactions, tt.budget)
			assert.True(t, got.WithBillAmount.Equal(dec(tt.withBill)), "withBill %s", got.WithBillAmount)
			assert.True(t, got.WithoutBillAmount.Equal(dec(tt.withoutBill)), "withoutBill %s", got.WithoutBillAmount)
			assert.True(t, got.TravelAmount.Equal(dec(tt.travel)), "travel %s", got.TravelAmount)
			assert.True(t, got.RemainingBalance.Equal(dec(tt.remaining)), "remaining %s", got.RemainingBalance)
		})
	}
}

func TestComputeTotals_SumMatchesAmounts(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", "01/01/2024", "A", "Xerox", models.WithBill, 15),
		tx("2", "01/01/2024", "B", "Bus pass", models.WithoutBill, 300),
		tx("3", "01/01/2024", "C", "Fruits", models.WithoutBill, 85),
	}
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.AmountGiven)
	}

	got := ComputeTotals(transactions, dec(1000))
	assert.True(t, got.TotalSpent().Equal(sum))
	assert.True(t, got.RemainingBalance.Equal(dec(1000).Sub(sum)))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", "01/01/2024", "A", "Metro charges", models.WithBill, 30),
		tx("2", "02/01/2024", "B", "Shoes", models.WithoutBill, 900),
	}
	first := ComputeTotals(transactions, dec(5000))
	second := ComputeTotals(transactions, dec(5000))
	assert.Equal(t, first, second)
}

func TestComputeTotals_FractionalAmounts(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "1", Date: "01/01/2024", CustomerName: "A", Purpose: "Xerox", BillType: models.WithBill, AmountGiven: decimal.RequireFromString("0.1")},
		{ID: "2", Date: "01/01/2024", CustomerName: "A", Purpose: "Xerox", BillType: models.WithBill, AmountGiven: decimal.RequireFromString("0.2")},
	}
	got := ComputeTotals(transactions, dec(1))
	assert.Equal(t, "0.3", got.WithBillAmount.String())
	assert.Equal(t, "0.7", got.RemainingBalance.String())
}

func TestTotalsWithKeywords(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", "01/01/2024", "A", "Ferry ticket", models.WithBill, 70),
		tx("2", "01/01/2024", "A", "Petrol", models.WithBill, 30),
	}
	got := TotalsWithKeywords(transactions, dec(1000), []string{"Ferry"})
	assert.True(t, got.TravelAmount.Equal(dec(70)))

	fallback := TotalsWithKeywords(transactions, dec(1000), nil)
	assert.True(t, fallback.TravelAmount.Equal(dec(30)))
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "30000", want: "30000"},
		{in: " 1250.50 ", want: "1250.5"},
		{in: "-100", want: "-100"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Infinity", wantErr: true},
		{in: "-inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBudget(tt.in)
			if tt.wantErr {
				var berr *ledgererror.InvalidBudgetError
				require.True(t, errors.As(err, &berr), "expected InvalidBudgetError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestIsTravelPurpose(t *testing.T) {
	tests := map[string]bool{
		"Petrol":                true,
		"Uber charges":          true,
		"Extra amount for auto": true,
		"Bus pass":              true,
		"Travelling charges":    true,
		"METRO CHARGES":         true,
		"Milk charges":          false,
		"Vegetables":            false,
		"":                      false,
	}
	for purpose, want := range tests {
		t.Run(purpose, func(t *testing.T) {
			assert.Equal(t, want, IsTravelPurpose(purpose))
		})
	}
}
