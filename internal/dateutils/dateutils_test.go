package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLedgerDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		year      int
		month     time.Month
		day       int
	}{
		{"two digit day and month", "15/03/2024", false, 2024, time.March, 15},
		{"single digit components", "1/2/2024", false, 2024, time.February, 1},
		{"surrounding whitespace", "  01/01/2024 ", false, 2024, time.January, 1},
		{"day first not month first", "12/01/2024", false, 2024, time.January, 12},
		{"impossible day", "31/02/2024", true, 0, 0, 0},
		{"month out of range", "01/13/2024", true, 0, 0, 0},
		{"iso is not a ledger date", "2024-03-15", true, 0, 0, 0},
		{"garbage", "yesterday", true, 0, 0, 0},
		{"empty", "", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLedgerDate(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
			assert.Equal(t, tt.day, got.Day())
		})
	}
}

func TestFormatLedgerDate(t *testing.T) {
	assert.Equal(t, "05/07/2024", FormatLedgerDate(time.Date(2024, time.July, 5, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatLedgerDate(time.Time{}))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"15/03/2024", "15/03/2024", false},
		{"5/3/2024", "05/03/2024", false},
		{"2024-03-15", "15/03/2024", false},
		{"15.03.2024", "15/03/2024", false},
		{"15-03-2024", "15/03/2024", false},
		{"15 Mar 2024", "15/03/2024", false},
		{"", "", true},
		{"March the fifth", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToday_IsParseable(t *testing.T) {
	_, err := ParseLedgerDate(Today())
	assert.NoError(t, err)
}
