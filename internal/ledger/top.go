package ledger

import (
	"fmt"
	"sort"
	"strings"

	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// TopLimit is the number of entries returned by TopSpendingBy.
const TopLimit = 5

// Field names a transaction attribute that spending can be grouped by.
type Field string

const (
	ByPurpose  Field = "purpose"
	ByCustomer Field = "customer"
)

// ParseField accepts "purpose", "customer" and "customerName".
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "purpose":
		return ByPurpose, nil
	case "customer", "customername":
		return ByCustomer, nil
	}
	return "", fmt.Errorf("unknown grouping field %q", s)
}

func (f Field) value(tx models.Transaction) string {
	if f == ByCustomer {
		return tx.CustomerName
	}
	return tx.Purpose
}

// Spending is one ranked group.
type Spending struct {
	Name   string
	Amount decimal.Decimal
}

// TopSpendingBy groups amounts by field and returns the TopLimit largest
// groups, largest first. Empty values are grouped under "N/A". Groups with
// equal sums keep the order in which they were first seen.
func TopSpendingBy(transactions []models.Transaction, field Field) []Spending {
	index := make(map[string]int)
	groups := make([]Spending, 0)
	for _, tx := range transactions {
		key := field.value(tx)
		if key == "" {
			key = models.NotAvailable
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Spending{Name: key, Amount: decimal.Zero})
		}
		groups[i].Amount = groups[i].Amount.Add(tx.AmountGiven)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.GreaterThan(groups[j].Amount)
	})
	if len(groups) > TopLimit {
		groups = groups[:TopLimit]
	}
	return groups
}
