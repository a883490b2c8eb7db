package collector

import (
	"testing"

	"pricetracker/lib/inventory"
	"pricetracker/lib/spreadsheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAssemble(t *testing.T) {
	sheets := []spreadsheet.Sheet{
		{
			Name:         "PS2",
			ExtraHeaders: []string{"Notes"},
			Rows: []inventory.Row{
				{Title: "Ico", Platform: "PS2", Region: "PAL", Condition: "C", Extra: map[string]string{"Notes": "black label"}},
				{Title: "Okami", Platform: "PS2", Region: "PAL", Condition: "X"},
			},
		},
		{
			Name: "Xbox",
			Rows: []inventory.Row{
				{Title: "Halo 2", Platform: "Xbox", Region: "NTSC-U", Condition: "L"},
			},
		},
	}
	results := []inventory.PriceResult{
		{RowIndex: 0, Amount: d("30.50"), Currency: "EUR", Status: inventory.StatusOK},
		{RowIndex: 1, Amount: decimal.Zero, Currency: "EUR", Status: inventory.StatusUnknownCondition},
		{RowIndex: 2, Amount: d("9.99"), Currency: "EUR", Status: inventory.StatusOK},
	}

	report, err := Assemble(sheets, results, "EUR")
	require.NoError(t, err)

	require.Equal(t, "EUR", report.Currency)
	require.Len(t, report.Groups, 2)

	ps2 := report.Groups[0]
	require.Equal(t, "PS2", ps2.Platform)
	require.Equal(t, []string{"Notes"}, ps2.ExtraHeaders)
	require.Len(t, ps2.Rows, 2)
	require.Equal(t, inventory.StatusUnknownCondition, ps2.Rows[1].Status)
	require.True(t, ps2.Subtotal.Equal(d("30.50")), "got %s", ps2.Subtotal)

	xbox := report.Groups[1]
	require.True(t, xbox.Subtotal.Equal(d("9.99")), "got %s", xbox.Subtotal)

	// grand total equals the sum of subtotals and the sum of row amounts
	require.True(t, report.GrandTotal.Equal(d("40.49")), "got %s", report.GrandTotal)
	rowSum := decimal.Zero
	for _, res := range results {
		rowSum = rowSum.Add(res.Amount)
	}
	require.True(t, report.GrandTotal.Equal(rowSum))
	subtotalSum := decimal.Zero
	for _, g := range report.Groups {
		subtotalSum = subtotalSum.Add(g.Subtotal)
	}
	require.True(t, report.GrandTotal.Equal(subtotalSum))
}

func TestAssembleLengthMismatch(t *testing.T) {
	sheets := []spreadsheet.Sheet{
		{Name: "PS2", Rows: []inventory.Row{{Title: "Ico"}}},
	}

	_, err := Assemble(sheets, nil, "USD")
	require.Error(t, err)
}

func TestAssembleEmpty(t *testing.T) {
	report, err := Assemble(nil, nil, "USD")
	require.NoError(t, err)
	require.Empty(t, report.Groups)
	require.True(t, report.GrandTotal.IsZero())
}
