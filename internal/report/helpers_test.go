package report

import (
	"time"

	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

var exportDate = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Date: "03/03/2024", CustomerName: "Ravi", ShopName: "Metro Mart", BillType: models.WithBill, Purpose: "Groceries", AmountGiven: decimal.RequireFromString("1500.50")},
		{ID: "t2", Date: "01/03/2024", CustomerName: "Anita", BillType: models.WithoutBill, Purpose: "Auto fare", AmountGiven: decimal.NewFromInt(120)},
		{ID: "t3", Date: "03/03/2024", CustomerName: "Anita", ShopName: "Stationery Hub", BillType: models.WithBill, Purpose: "Printing", AmountGiven: decimal.NewFromInt(300)},
	}
}

func sampleSnapshot() models.Snapshot {
	s := models.NewSnapshot()
	s.Budget = decimal.NewFromInt(30000)
	s.Transactions = sampleTransactions()
	s.Bills = models.BillMap{
		"t1": models.NewBill("receipt (1).jpg", "image/jpeg", []byte("jpeg-bytes"), exportDate),
	}
	return s
}
