package ledger

import (
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

func tx(id, date, customer, purpose string, billType models.BillType, amount int64) models.Transaction {
	return models.Transaction{
		ID:           id,
		Date:         date,
		CustomerName: customer,
		BillType:     billType,
		Purpose:      purpose,
		AmountGiven:  decimal.NewFromInt(amount),
	}
}

func ids(transactions []models.Transaction) []string {
	out := make([]string, len(transactions))
	for i, t := range transactions {
		out[i] = t.ID
	}
	return out
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
