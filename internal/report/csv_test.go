package report

import (
	"bytes"
	"strings"
	"testing"

	"ssshep/expensepro/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_Write(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
		header    string
		firstRow  string
	}{
		{
			name:      "default comma",
			delimiter: 0,
			header:    "Date,Customer Name,Shop Name,Bill Type,Purpose,Amount",
			firstRow:  "01/03/2024,Anita,,Without Bill,Auto fare,120.00",
		},
		{
			name:      "semicolon",
			delimiter: ';',
			header:    "Date;Customer Name;Shop Name;Bill Type;Purpose;Amount",
			firstRow:  "01/03/2024;Anita;;Without Bill;Auto fare;120.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVWriter(tt.delimiter).Write(&buf, sampleTransactions()))

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 4)
			assert.Equal(t, tt.header, lines[0])
			assert.Equal(t, tt.firstRow, lines[1])
			assert.True(t, strings.HasSuffix(lines[3], "1500.50"), lines[3])
		})
	}
}

func TestCSVWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVWriter(',').Write(&buf, nil)
	assert.ErrorIs(t, err, ledgererror.ErrNoTransactions)
	assert.Zero(t, buf.Len())
}
