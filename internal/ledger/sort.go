package ledger

import (
	"sort"

	"ssshep/expensepro/internal/models"
)

// SortForReporting returns the canonical export order shared by every report
// target: date ascending, then customer name, then purpose, then original
// position. Strings compare byte-wise so the order does not depend on locale.
func SortForReporting(transactions []models.Transaction) ([]models.Transaction, error) {
	dates, err := parseDates(transactions)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(transactions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := transactions[order[a]], transactions[order[b]]
		dx, dy := dates[order[a]], dates[order[b]]
		if !dx.Equal(dy) {
			return dx.Before(dy)
		}
		if x.CustomerName != y.CustomerName {
			return x.CustomerName < y.CustomerName
		}
		return x.Purpose < y.Purpose
	})

	result := make([]models.Transaction, len(order))
	for i, idx := range order {
		result[i] = transactions[idx]
	}
	return result, nil
}
