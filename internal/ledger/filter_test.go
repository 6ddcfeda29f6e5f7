package ledger

import (
	"errors"
	"testing"

	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	shop := tx("3", "10/02/2024", "Carol", "Stationary", models.WithBill, 60)
	shop.ShopName = "Soujanya stationery"
	return []models.Transaction{
		tx("1", "01/01/2024", "Alice", "Milk charges", models.WithBill, 100),
		tx("2", "15/03/2024", "Bob", "Petrol", models.WithoutBill, 500),
		shop,
		tx("4", "01/01/2024", "Alice", "Uber charges", models.WithoutBill, 200),
	}
}

func TestFilterAndSort_AllReturnsEverythingNewestFirst(t *testing.T) {
	input := sampleTransactions()
	got, err := FilterAndSort(input, Criteria{BillType: AllBills})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))
	assert.Len(t, got, len(input))
}

func TestFilterAndSort_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "zero value means all", criteria: Criteria{}, want: []string{"2", "3", "1", "4"}},
		{name: "with bill", criteria: Criteria{BillType: OnlyWithBill}, want: []string{"3", "1"}},
		{name: "without bill", criteria: Criteria{BillType: OnlyWithoutBill}, want: []string{"2", "4"}},
		{name: "customer exact", criteria: Criteria{Customer: "Alice"}, want: []string{"1", "4"}},
		{name: "customer is case sensitive", criteria: Criteria{Customer: "alice"}, want: []string{}},
		{name: "purpose exact", criteria: Criteria{Purpose: "Petrol"}, want: []string{"2"}},
		{name: "search customer", criteria: Criteria{Search: "BOB"}, want: []string{"2"}},
		{name: "search shop", criteria: Criteria{Search: "soujanya"}, want: []string{"3"}},
		{name: "search purpose", criteria: Criteria{Search: "charges"}, want: []string{"1", "4"}},
		{name: "conjunction", criteria: Criteria{BillType: OnlyWithoutBill, Customer: "Alice", Search: "uber"}, want: []string{"4"}},
		{name: "no match", criteria: Criteria{Search: "nothing"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterAndSort(sampleTransactions(), tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterAndSort_TiesAreDeterministic(t *testing.T) {
	input := []models.Transaction{
		tx("a", "01/01/2024", "X", "P", models.WithBill, 1),
		tx("b", "15/03/2024", "X", "P", models.WithBill, 1),
		tx("c", "01/01/2024", "X", "P", models.WithBill, 1),
	}
	first, err := FilterAndSort(input, Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(first))

	for i := 0; i < 10; i++ {
		again, err := FilterAndSort(input, Criteria{})
		require.NoError(t, err)
		assert.Equal(t, ids(first), ids(again))
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	input := sampleTransactions()
	before := ids(input)
	_, err := FilterAndSort(input, Criteria{})
	require.NoError(t, err)
	assert.Equal(t, before, ids(input))
}

func TestFilterAndSort_MalformedDate(t *testing.T) {
	input := sampleTransactions()
	input = append(input, tx("bad", "2024/13/45", "Zed", "Fruits", models.WithBill, 10))

	_, err := FilterAndSort(input, Criteria{Customer: "Alice"})
	var derr *ledgererror.MalformedDateError
	require.True(t, errors.As(err, &derr), "expected MalformedDateError, got %v", err)
	assert.Equal(t, "bad", derr.TransactionID)
	assert.Equal(t, "2024/13/45", derr.Date)
}

func TestFilterAndSort_LenientDayMonth(t *testing.T) {
	input := []models.Transaction{
		tx("1", "5/1/2024", "A", "P", models.WithBill, 1),
		tx("2", "10/01/2024", "A", "P", models.WithBill, 1),
	}
	got, err := FilterAndSort(input, Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(got))
}

func TestParseBillFilter(t *testing.T) {
	tests := map[string]BillFilter{
		"":            AllBills,
		"all":         AllBills,
		"withBill":    OnlyWithBill,
		"With Bill":   OnlyWithBill,
		"withoutBill": OnlyWithoutBill,
		"without":     OnlyWithoutBill,
	}
	for in, want := range tests {
		got, err := ParseBillFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBillFilter("some")
	assert.Error(t, err)
}
