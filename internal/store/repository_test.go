package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(s Store) *Repository {
	return NewRepository(s, logging.NewMockLogger(), decimal.NewFromInt(30000))
}

func sampleSnapshot() models.Snapshot {
	snap := models.NewSnapshot()
	snap.Budget = decimal.RequireFromString("45000.50")
	snap.Transactions = []models.Transaction{
		{
			ID: "t1", Date: "15/03/2024", CustomerName: "Alice", ShopName: "D Mart",
			BillType: models.WithBill, Purpose: "Vegetables", AmountGiven: decimal.RequireFromString("250.75"),
		},
		{
			ID: "t2", Date: "16/03/2024", CustomerName: "Bob",
			BillType: models.WithoutBill, Purpose: "Petrol", AmountGiven: decimal.NewFromInt(500),
		},
	}
	snap.Bills["t1"] = models.NewBill("bill.jpg", "image/jpeg", []byte{0xFF, 0xD8, 0x00},
		time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))
	snap.ValidPurposes = []string{"Petrol", "Vegetables"}
	snap.ValidShops = []string{"D Mart"}
	return snap
}

func TestRepository_LoadDefaults(t *testing.T) {
	repo := newTestRepository(NewMemoryStore())

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)
	assert.NotNil(t, snap.Transactions)
	assert.Empty(t, snap.Bills)
	assert.True(t, snap.Budget.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, models.DefaultPurposes, snap.ValidPurposes)
	assert.Equal(t, models.DefaultShops, snap.ValidShops)
}

func TestRepository_ConfiguredInitialBudget(t *testing.T) {
	repo := NewRepository(NewMemoryStore(), logging.NewMockLogger(), decimal.NewFromInt(5000))
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Budget.Equal(decimal.NewFromInt(5000)))

	fallback := NewRepository(NewMemoryStore(), logging.NewMockLogger(), decimal.Zero)
	assert.True(t, fallback.Defaults().Budget.Equal(models.DefaultBudget))
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(s)
			want := sampleSnapshot()
			require.NoError(t, repo.Save(ctx, want))

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got.Transactions, 2)
			assert.Equal(t, "t1", got.Transactions[0].ID)
			assert.True(t, got.Transactions[0].AmountGiven.Equal(decimal.RequireFromString("250.75")))
			assert.Equal(t, models.WithoutBill, got.Transactions[1].BillType)
			assert.True(t, got.Budget.Equal(want.Budget))
			require.True(t, got.Bills.Has("t1"))
			assert.Equal(t, []byte{0xFF, 0xD8, 0x00}, got.Bills["t1"].Data)
			assert.True(t, got.Bills["t1"].UploadedAt.Equal(want.Bills["t1"].UploadedAt))
			assert.Equal(t, want.ValidPurposes, got.ValidPurposes)
			assert.Equal(t, want.ValidShops, got.ValidShops)
		})
	}
}

func TestRepository_PayloadFormat(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, newTestRepository(s).Save(ctx, sampleSnapshot()))

	raw, ok, err := s.Get(ctx, KeyTransactions)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"customerName":"Alice"`)
	assert.Contains(t, string(raw), `"billType":"withBill"`)

	budget, _, err := s.Get(ctx, KeyBudget)
	require.NoError(t, err)
	assert.Equal(t, "45000.5", string(budget))
}

func TestRepository_AcceptsNumericAmounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	payload := `[{"id":"1","date":"01/01/2024","customerName":"A","shopName":"","billType":"withBill","purpose":"Milk","amountGiven":120.5}]`
	require.NoError(t, s.Put(ctx, KeyTransactions, []byte(payload)))

	snap, err := newTestRepository(s).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.True(t, snap.Transactions[0].AmountGiven.Equal(decimal.RequireFromString("120.5")))
}

func TestRepository_CorruptPayload(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyTransactions, `{not json`},
		{KeyBills, `[]`},
		{KeyBudget, `lots`},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := NewMemoryStore()
			require.NoError(t, s.Put(context.Background(), tt.key, []byte(tt.value)))
			_, err := newTestRepository(s).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	mock := NewMockStore()
	mock.GetError = boom
	_, err := newTestRepository(mock).Load(ctx)
	assert.ErrorIs(t, err, boom)

	mock = NewMockStore()
	mock.PutError = boom
	mock.FailPutKey = KeyBills
	err = newTestRepository(mock).Save(ctx, sampleSnapshot())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{KeyTransactions, KeyBills}, mock.PutCalls)
}

func TestRepository_Reset(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	repo := newTestRepository(s)
	require.NoError(t, repo.Save(ctx, sampleSnapshot()))
	require.NoError(t, repo.Reset(ctx))
	assert.Equal(t, 0, s.Len())

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)
}
